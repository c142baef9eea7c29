package quiz

func GuidedBank() []QuestionRecord {
	return []QuestionRecord{
		{
			Prompt: "What is the first step in most AI projects?",
			Options: []string{
				"Collect and prepare data",
				"Deploy the model",
				"Choose UI colors",
			},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Which metric is commonly used for classification?",
			Options:      []string{"Accuracy", "Mean squared error", "Word count"},
			CorrectIndex: 0,
		},
		{
			Prompt: "Why use a validation set?",
			Options: []string{
				"To tune model performance",
				"To store user passwords",
				"To design the interface",
			},
			CorrectIndex: 0,
		},
	}
}

func PracticeBank() []QuestionRecord {
	return []QuestionRecord{
		{
			Prompt: "What is the primary function of an activation function in a neural network?",
			Options: []string{
				"To initialize weights",
				"To introduce non-linearity",
				"To calculate loss",
				"To update gradients",
			},
			CorrectIndex: 1,
		},
		{
			Prompt:       "Which dataset split is used to tune hyperparameters?",
			Options:      []string{"Training", "Validation", "Test", "Production"},
			CorrectIndex: 1,
		},
		{
			Prompt: "What does backpropagation compute?",
			Options: []string{
				"Prediction outputs",
				"Weight gradients",
				"Input normalization",
				"Data augmentation",
			},
			CorrectIndex: 1,
		},
		{
			Prompt:       "Which metric is best for imbalanced classification?",
			Options:      []string{"Accuracy", "F1 score", "MSE", "R-squared"},
			CorrectIndex: 1,
		},
		{
			Prompt: "What is the goal of regularization?",
			Options: []string{
				"Increase training error",
				"Reduce overfitting",
				"Expand dataset size",
				"Speed up inference",
			},
			CorrectIndex: 1,
		},
		{
			Prompt:       "Which optimizer adapts learning rates per parameter?",
			Options:      []string{"SGD", "Adam", "Batch Norm", "Dropout"},
			CorrectIndex: 1,
		},
		{
			Prompt: "What does an epoch represent?",
			Options: []string{
				"One forward pass",
				"One full pass over the dataset",
				"One layer update",
				"One gradient step only",
			},
			CorrectIndex: 1,
		},
	}
}
