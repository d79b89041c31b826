package bootstrap

import (
	"time"

	"github.com/student-hub/backend/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SamplePosts returns the demo feed inserted by POST /initialize. The
// like_count values always equal len(likes).
func SamplePosts() []model.Post {
	return []model.Post{
		{
			ID:             "1",
			Type:           model.TypePost,
			Title:          "How to Get Started with Machine Learning",
			Excerpt:        "A comprehensive guide for beginners to dive into the world of AI and ML.",
			Author:         "Akhilesh Kumar",
			AuthorUsername: "akhilesh",
			Date:           date(2024, time.January, 15),
			Category:       "AI-ML",
			ReadTime:       "5 min read",
			Image:          "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80",
			Tags:           []string{"ai", "ml", "beginner", "tutorial"},
			Likes: []model.Like{
				{UserID: "user1", UserName: "John Doe"},
				{UserID: "user2", UserName: "Jane Smith"},
			},
			LikeCount: 2,
			Content:   "Machine learning is transforming industries. In this post, we cover the basics, best resources, and tips to start your journey.",
			Comments: []model.Comment{
				{UserID: "user3", UserName: "Mike Johnson", Text: "Great post! Thanks for sharing.", CreatedAt: date(2024, time.January, 16)},
				{UserID: "user4", UserName: "Sarah Wilson", Text: "Really helpful for beginners!", CreatedAt: date(2024, time.January, 17)},
			},
		},
		{
			ID:             "2",
			Type:           model.TypePost,
			Title:          "JavaScript Best Practices for 2024",
			Excerpt:        "Learn the latest JavaScript patterns and practices for modern web development.",
			Author:         "Priya Sharma",
			AuthorUsername: "priya",
			Date:           date(2024, time.January, 10),
			Category:       "Programming",
			ReadTime:       "8 min read",
			Image:          "https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=800&q=80",
			Tags:           []string{"javascript", "web-development", "best-practices"},
			Likes: []model.Like{
				{UserID: "user1", UserName: "John Doe"},
			},
			LikeCount: 1,
			Content:   "JavaScript has evolved significantly over the years. This post covers the latest best practices, ES6+ features, and modern patterns.",
			Comments: []model.Comment{
				{UserID: "user5", UserName: "Alex Chen", Text: "Very informative article!", CreatedAt: date(2024, time.January, 11)},
			},
		},
		{
			ID:             "3",
			Type:           model.TypePost,
			Title:          "5G Technology: What You Need to Know",
			Excerpt:        "Understanding the impact of 5G on telecommunications and daily life.",
			Author:         "Rahul Verma",
			AuthorUsername: "rahul",
			Date:           date(2024, time.January, 8),
			Category:       "Telecommunications",
			ReadTime:       "6 min read",
			Image:          "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=800&q=80",
			Tags:           []string{"5g", "telecommunications", "technology"},
			Likes:          []model.Like{},
			LikeCount:      0,
			Content:        "5G technology is revolutionizing how we connect and communicate. This post explores the key features, benefits, and future implications.",
			Comments:       []model.Comment{},
		},
		{
			ID:             "4",
			Type:           model.TypePost,
			Title:          "Effective Study Techniques for College Students",
			Excerpt:        "Proven methods to improve your study habits and academic performance.",
			Author:         "Ananya Singh",
			AuthorUsername: "ananya",
			Date:           date(2024, time.January, 5),
			Category:       "Study Tips",
			ReadTime:       "4 min read",
			Image:          "https://images.unsplash.com/photo-1513258496099-48168024aec0?auto=format&fit=crop&w=800&q=80",
			Tags:           []string{"study-tips", "academic", "productivity"},
			Likes: []model.Like{
				{UserID: "user2", UserName: "Jane Smith"},
				{UserID: "user6", UserName: "David Brown"},
			},
			LikeCount: 2,
			Content:   "Success in college requires more than just attending classes. This post shares effective study techniques that can help you excel.",
			Comments: []model.Comment{
				{UserID: "user7", UserName: "Emma Davis", Text: "These tips really helped me improve my grades!", CreatedAt: date(2024, time.January, 6)},
			},
		},
		{
			ID:             "5",
			Type:           model.TypePost,
			Title:          "Career Opportunities in Data Science",
			Excerpt:        "Explore the growing field of data science and career paths available.",
			Author:         "Sneha Patel",
			AuthorUsername: "sneha",
			Date:           date(2024, time.January, 3),
			Category:       "Career",
			ReadTime:       "7 min read",
			Image:          "https://images.unsplash.com/photo-1503676382389-4809596d5290?auto=format&fit=crop&w=800&q=80",
			Tags:           []string{"data-science", "career", "job-market"},
			Likes: []model.Like{
				{UserID: "user1", UserName: "John Doe"},
				{UserID: "user3", UserName: "Mike Johnson"},
				{UserID: "user8", UserName: "Lisa Wang"},
			},
			LikeCount: 3,
			Content:   "Data science is one of the fastest-growing fields in technology. This post explores career opportunities, required skills, and how to start.",
			Comments: []model.Comment{
				{UserID: "user9", UserName: "Tom Anderson", Text: "Great overview of the field!", CreatedAt: date(2024, time.January, 4)},
				{UserID: "user10", UserName: "Maria Garcia", Text: "What programming languages should I learn first?", CreatedAt: date(2024, time.January, 4)},
			},
		},
		{
			ID:          "6",
			Type:        model.TypeNote,
			Title:       "Discrete Mathematics Notes - Graph Theory",
			Excerpt:     "Download comprehensive notes on Graph Theory for quick revision.",
			Author:      "Ananya Sharma",
			Date:        date(2023, time.December, 20),
			Category:    "Notes",
			ReadTime:    "2 min read",
			Tags:        []string{"Mathematics", "Graph Theory", "CS201"},
			Likes:       []model.Like{},
			LikeCount:   0,
			Content:     "These notes cover all important concepts in Graph Theory for CS201.",
			Comments:    []model.Comment{},
			DocumentURL: "https://res.cloudinary.com/demo/raw/upload/v1710000000/graph_theory_notes.pdf",
		},
		{
			ID:           "7",
			Type:         model.TypeJob,
			Title:        "Software Engineer Internship at Google",
			Excerpt:      "Exciting internship opportunity for 3rd year students. Apply now!",
			Author:       "Placement Cell",
			Date:         date(2023, time.December, 18),
			Category:     "Jobs",
			ReadTime:     "1 min read",
			Tags:         []string{},
			Likes:        []model.Like{},
			LikeCount:    0,
			Content:      "Google is hiring interns for Summer 2024. See link for details.",
			Comments:     []model.Comment{},
			JobLink:      "https://careers.google.com/jobs/results/123456-software-engineer-intern/",
			ReferralInfo: "Contact alumni Priya S. for referral.",
		},
		{
			ID:        "8",
			Type:      model.TypeThread,
			Title:     "How to prepare for GATE CS?",
			Excerpt:   "Share your tips and resources for GATE Computer Science preparation.",
			Author:    "Rahul Verma",
			Date:      date(2023, time.December, 15),
			Category:  "Threads",
			ReadTime:  "3 min read",
			Tags:      []string{},
			Likes:     []model.Like{},
			LikeCount: 0,
			Content:   "Let's discuss the best strategies and materials for GATE CS.",
			Comments: []model.Comment{
				{UserID: "user_sneha", UserName: "Sneha", Text: "Start with previous year papers!", CreatedAt: date(2023, time.December, 16)},
				{UserID: "user_amit", UserName: "Amit", Text: "Use NPTEL lectures for tough topics.", CreatedAt: date(2023, time.December, 17)},
			},
		},
	}
}

// SampleQuestionPapers and SampleTextbooks back the static resource pages.
func SampleQuestionPapers() []model.QuestionPaper {
	return []model.QuestionPaper{
		{ID: "qp1", Title: "Data Structures Midterm", Subject: "CS201", Year: 2023, FileURL: "/static/papers/cs201-2023-midterm.pdf", CreatedAt: date(2023, time.November, 2)},
		{ID: "qp2", Title: "Computer Networks Final", Subject: "CS305", Year: 2023, FileURL: "/static/papers/cs305-2023-final.pdf", CreatedAt: date(2023, time.December, 18)},
		{ID: "qp3", Title: "Signals and Systems Final", Subject: "EC204", Year: 2022, FileURL: "/static/papers/ec204-2022-final.pdf", CreatedAt: date(2022, time.December, 20)},
	}
}

func SampleTextbooks() []model.Textbook {
	return []model.Textbook{
		{ID: "tb1", Title: "Introduction to Algorithms", Author: "Cormen et al.", Subject: "CS201", FileURL: "/static/textbooks/clrs.pdf", CreatedAt: date(2023, time.August, 1)},
		{ID: "tb2", Title: "Computer Networking: A Top-Down Approach", Author: "Kurose, Ross", Subject: "CS305", FileURL: "/static/textbooks/kurose-ross.pdf", CreatedAt: date(2023, time.August, 1)},
	}
}
