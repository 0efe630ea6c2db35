package update

// breakExercises are short physical resets suggested after a completed
// session. The pick rotates with the lifetime session count so suggestions
// vary without needing randomness.
var breakExercises = []string{
	"Stand up and stretch your neck and shoulders",
	"Walk around the room for a couple of minutes",
	"Drink a glass of water",
	"Do ten slow squats",
	"Look out the window at something far away",
	"Take five deep breaths with your eyes closed",
	"Roll your wrists and shake out your hands",
}

func breakExercise(totalSessions int) string {
	if totalSessions < 0 {
		totalSessions = 0
	}
	return breakExercises[totalSessions%len(breakExercises)]
}
