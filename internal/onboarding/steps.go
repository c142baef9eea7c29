package onboarding

func DefaultSteps() []Step {
	return []Step{
		{
			Title: "About you",
			Fields: []Field{
				{Name: "name", Label: "Full name", Rules: "required,min=2"},
				{Name: "email", Label: "Email", Rules: "required,email"},
			},
		},
		{
			Title: "Your goals",
			Fields: []Field{
				{Name: "goal", Label: "Main goal (career, hobby, research)", Rules: "required,oneof=career hobby research"},
				{Name: "level", Label: "Experience (beginner, intermediate, advanced)", Rules: "required,oneof=beginner intermediate advanced"},
			},
		},
		{
			Title: "Study plan",
			Fields: []Field{
				{Name: "weekly_hours", Label: "Hours per week", Rules: "required,numeric"},
			},
		},
	}
}
