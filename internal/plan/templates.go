package plan

// templates maps each (archetype, tier) pair to a fixed sequence of
// sub-task titles and session quotas. Lookup falls back to the medium
// tier, then to the first tier present in tierOrder.
var templates = map[Archetype]map[Tier][]Step{
	ArchetypeExam: {
		TierLow: {
			{Title: "Review the main topics", EstimatedSessions: 2},
			{Title: "Solve typical problems", EstimatedSessions: 2},
			{Title: "Check your knowledge", EstimatedSessions: 1},
		},
		TierMedium: {
			{Title: "Collect materials and notes", EstimatedSessions: 2},
			{Title: "Draw up a study plan", EstimatedSessions: 1},
			{Title: "Study the theory and key concepts", EstimatedSessions: 4},
			{Title: "Solve practice problems", EstimatedSessions: 3},
			{Title: "Review and consolidate the material", EstimatedSessions: 2},
		},
		TierHigh: {
			{Title: "Collect all materials and notes", EstimatedSessions: 3},
			{Title: "Draw up a detailed study plan", EstimatedSessions: 2},
			{Title: "Study the theory for every topic", EstimatedSessions: 6},
			{Title: "Solve problems of every type", EstimatedSessions: 5},
			{Title: "Review the difficult parts", EstimatedSessions: 3},
			{Title: "Run a final review", EstimatedSessions: 2},
		},
	},
	ArchetypeCoursework: {
		TierMedium: {
			{Title: "Choose a topic and collect sources", EstimatedSessions: 2},
			{Title: "Draw up a work plan", EstimatedSessions: 1},
			{Title: "Study the literature", EstimatedSessions: 3},
			{Title: "Write the main part", EstimatedSessions: 6},
			{Title: "Format and proofread the work", EstimatedSessions: 2},
		},
		TierHigh: {
			{Title: "Choose a topic and do the research", EstimatedSessions: 3},
			{Title: "Draw up a detailed work plan", EstimatedSessions: 2},
			{Title: "Study the academic literature", EstimatedSessions: 4},
			{Title: "Write the introduction and main part", EstimatedSessions: 8},
			{Title: "Write the conclusion and findings", EstimatedSessions: 3},
			{Title: "Format and proofread the work", EstimatedSessions: 3},
		},
	},
	ArchetypeThesis: {
		TierVeryHigh: {
			{Title: "Choose a topic and run the analysis", EstimatedSessions: 4},
			{Title: "Draw up the work structure", EstimatedSessions: 2},
			{Title: "Study the academic sources", EstimatedSessions: 6},
			{Title: "Write the theory chapter", EstimatedSessions: 8},
			{Title: "Run the practical research", EstimatedSessions: 10},
			{Title: "Write the practical chapter", EstimatedSessions: 8},
			{Title: "Write the conclusion", EstimatedSessions: 4},
			{Title: "Format and proofread the work", EstimatedSessions: 4},
		},
	},
	ArchetypeProject: {
		TierLow: {
			{Title: "Plan the project", EstimatedSessions: 1},
			{Title: "Implement the core features", EstimatedSessions: 3},
			{Title: "Test and polish", EstimatedSessions: 2},
		},
		TierMedium: {
			{Title: "Plan and analyse requirements", EstimatedSessions: 2},
			{Title: "Design the solution", EstimatedSessions: 3},
			{Title: "Implement the core functionality", EstimatedSessions: 5},
			{Title: "Test and debug", EstimatedSessions: 3},
			{Title: "Document and finalise", EstimatedSessions: 2},
		},
		TierHigh: {
			{Title: "Detailed planning and analysis", EstimatedSessions: 3},
			{Title: "Design the architecture", EstimatedSessions: 4},
			{Title: "Implement the base functionality", EstimatedSessions: 6},
			{Title: "Implement the extended functionality", EstimatedSessions: 6},
			{Title: "Test every component", EstimatedSessions: 4},
			{Title: "Optimise and refactor", EstimatedSessions: 3},
			{Title: "Document and finalise", EstimatedSessions: 3},
		},
	},
	ArchetypeLearning: {
		TierLow: {
			{Title: "Prepare the materials", EstimatedSessions: 1},
			{Title: "Learn the basics", EstimatedSessions: 2},
			{Title: "Practise", EstimatedSessions: 2},
		},
		TierMedium: {
			{Title: "Prepare the study materials", EstimatedSessions: 1},
			{Title: "Learn the basic concepts", EstimatedSessions: 3},
			{Title: "Do practice exercises", EstimatedSessions: 4},
			{Title: "Review and consolidate", EstimatedSessions: 2},
		},
		TierHigh: {
			{Title: "Prepare the study materials", EstimatedSessions: 2},
			{Title: "Learn the basic concepts", EstimatedSessions: 4},
			{Title: "Learn the advanced topics", EstimatedSessions: 4},
			{Title: "Do practice exercises", EstimatedSessions: 5},
			{Title: "Solve hard problems", EstimatedSessions: 4},
			{Title: "Review and systematise", EstimatedSessions: 3},
		},
	},
	ArchetypePreparation: {
		TierMedium: {
			{Title: "Define the preparation goals", EstimatedSessions: 1},
			{Title: "Collect the needed materials", EstimatedSessions: 2},
			{Title: "Draw up a preparation plan", EstimatedSessions: 1},
			{Title: "Study the material", EstimatedSessions: 4},
			{Title: "Practise and consolidate", EstimatedSessions: 3},
		},
	},
	ArchetypeWriting: {
		TierLow: {
			{Title: "Prepare the materials", EstimatedSessions: 1},
			{Title: "Write the text", EstimatedSessions: 3},
			{Title: "Proofread and edit", EstimatedSessions: 1},
		},
		TierMedium: {
			{Title: "Research the topic", EstimatedSessions: 2},
			{Title: "Outline the text", EstimatedSessions: 1},
			{Title: "Write the draft", EstimatedSessions: 4},
			{Title: "Edit and improve", EstimatedSessions: 2},
			{Title: "Proofread and finalise", EstimatedSessions: 1},
		},
		TierHigh: {
			{Title: "Research the topic in depth", EstimatedSessions: 3},
			{Title: "Draw up a detailed outline", EstimatedSessions: 2},
			{Title: "Write the introduction and main part", EstimatedSessions: 6},
			{Title: "Write the conclusion", EstimatedSessions: 2},
			{Title: "Edit and improve", EstimatedSessions: 3},
			{Title: "Final proofread", EstimatedSessions: 2},
		},
	},
	ArchetypeCreation: {
		TierMedium: {
			{Title: "Plan the concept", EstimatedSessions: 2},
			{Title: "Prepare the materials", EstimatedSessions: 1},
			{Title: "Create the main part", EstimatedSessions: 4},
			{Title: "Refine and improve", EstimatedSessions: 2},
			{Title: "Finalise", EstimatedSessions: 1},
		},
	},
	ArchetypeGeneral: {
		TierMedium: {
			{Title: "Prepare and plan", EstimatedSessions: 1},
			{Title: "Do the main work", EstimatedSessions: 3},
			{Title: "Check and wrap up", EstimatedSessions: 2},
		},
	},
}

var tierOrder = []Tier{TierLow, TierMedium, TierHigh, TierVeryHigh}

func templateFor(archetype Archetype, tier Tier) []Step {
	tiers, ok := templates[archetype]
	if !ok {
		tiers = templates[ArchetypeGeneral]
	}
	if steps, ok := tiers[tier]; ok {
		return steps
	}
	if steps, ok := tiers[TierMedium]; ok {
		return steps
	}
	for _, t := range tierOrder {
		if steps, ok := tiers[t]; ok {
			return steps
		}
	}
	return templates[ArchetypeGeneral][TierMedium]
}
