package usecase

import "cv-builder/internal/model"

// SampleResume returns demonstration data for template previews.
func SampleResume() *model.Resume {
	return &model.Resume{
		User: model.UserInfo{
			Name:        "John Doe",
			Email:       "john.doe@example.com",
			Phone:       "+1 (555) 123-4567",
			Location:    "San Francisco, CA",
			LinkedinURL: "https://linkedin.com/in/johndoe",
			GithubURL:   "https://github.com/johndoe",
		},
		Summaries: []model.Summary{{
			GeneratedSummary: "Experienced software engineer with expertise in full-stack development, machine learning, and cloud technologies. Passionate about building scalable solutions and leading technical teams.",
		}},
		Projects: []model.Project{
			{
				Title:        "E-commerce Platform",
				Description:  "Built a full-stack e-commerce platform with React frontend and Node.js backend. Implemented secure payment processing and real-time inventory management.",
				StartDate:    "Jan 2024",
				EndDate:      "Present",
				Technologies: "React, Node.js, PostgreSQL, AWS",
			},
			{
				Title:        "ML Recommendation Engine",
				Description:  "Developed machine learning recommendation system using collaborative filtering and content-based algorithms. Improved user engagement by 40%.",
				StartDate:    "Sep 2023",
				EndDate:      "Dec 2023",
				Technologies: "Python, TensorFlow, Redis, Docker",
			},
		},
		Experience: []model.Experience{{
			Company:     "Tech Solutions Inc.",
			Position:    "Senior Software Engineer",
			Description: "Led development of microservices architecture. Mentored junior developers and improved code quality through comprehensive testing.",
			StartDate:   "Jun 2022",
			EndDate:     "Present",
		}},
		Research: []model.Research{{
			Title:       "Natural Language Processing Research",
			Description: "Researched advanced NLP techniques for sentiment analysis. Published findings in peer-reviewed conference.",
			StartDate:   "Jan 2022",
			EndDate:     "May 2022",
		}},
		Education: []model.Education{{
			Degree:         "Master of Science in Computer Science",
			Institution:    "Stanford University",
			GraduationDate: "May 2022",
			GPAPercentage:  "3.8/4.0",
		}},
		Skills: []model.SkillCategory{
			{Category: "Programming Languages", Skills: "Python, JavaScript, Java, C++, Go"},
			{Category: "Frameworks & Libraries", Skills: "React, Node.js, Django, TensorFlow, PyTorch"},
			{Category: "Cloud & DevOps", Skills: "AWS, Docker, Kubernetes, CI/CD, Terraform"},
		},
		Certifications: []model.Certification{{
			Title:        "AWS Solutions Architect",
			Issuer:       "Amazon Web Services",
			DateObtained: "Dec 2023",
		}},
	}
}
