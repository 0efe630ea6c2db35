package progression

import (
	"testing"

	"focusd/internal/model"
)

func threeStepTask() model.Task {
	return model.Task{
		ID:    "t1",
		Title: "Prepare for exam",
		SubTasks: []model.SubTask{
			{ID: 1, Title: "Collect materials", EstimatedSessions: 2},
			{ID: 2, Title: "Study theory", EstimatedSessions: 3},
			{ID: 3, Title: "Practice", EstimatedSessions: 1},
		},
		TotalSessions: 6,
	}
}

func TestIsTaskCompleteRequiresSubTasks(t *testing.T) {
	if IsTaskComplete(model.Task{ID: "empty", Title: "No steps"}) {
		t.Fatal("task without sub-tasks must never be complete")
	}
}

func TestIsTaskCompleteAllQuotasMet(t *testing.T) {
	task := threeStepTask()
	if IsTaskComplete(task) {
		t.Fatal("fresh task must not be complete")
	}
	for i := range task.SubTasks {
		task.SubTasks[i].CompletedSessions = task.SubTasks[i].EstimatedSessions
	}
	if !IsTaskComplete(task) {
		t.Fatal("expected task complete once every quota is met")
	}
}

func TestCanStartSequentialUnlock(t *testing.T) {
	task := threeStepTask()

	if !CanStart(task, 1) {
		t.Fatal("first sub-task must be startable")
	}
	if CanStart(task, 2) {
		t.Fatal("second sub-task must be locked while the first is incomplete")
	}
	if CanStart(task, 3) {
		t.Fatal("third sub-task must be locked")
	}

	task.SubTasks[0].CompletedSessions = 2
	if CanStart(task, 1) {
		t.Fatal("completed sub-task must not be startable")
	}
	if !CanStart(task, 2) {
		t.Fatal("second sub-task must unlock once the first completes")
	}
	if CanStart(task, 3) {
		t.Fatal("third sub-task must stay locked behind the second")
	}

	// Completing a later sub-task never revokes an earlier completion.
	task.SubTasks[1].CompletedSessions = 3
	if !IsSubTaskComplete(task.SubTasks[0]) {
		t.Fatal("earlier completion must be preserved")
	}
	if !CanStart(task, 3) {
		t.Fatal("third sub-task must unlock")
	}
}

func TestCanStartUnknownID(t *testing.T) {
	if CanStart(threeStepTask(), 99) {
		t.Fatal("unknown sub-task id must not be startable")
	}
}

func TestFirstIncomplete(t *testing.T) {
	task := threeStepTask()
	st, ok := FirstIncomplete(task)
	if !ok || st.ID != 1 {
		t.Fatalf("expected first incomplete sub-task 1, got %v %v", st.ID, ok)
	}

	task.SubTasks[0].CompletedSessions = 2
	st, ok = FirstIncomplete(task)
	if !ok || st.ID != 2 {
		t.Fatalf("expected first incomplete sub-task 2, got %v %v", st.ID, ok)
	}

	for i := range task.SubTasks {
		task.SubTasks[i].CompletedSessions = task.SubTasks[i].EstimatedSessions
	}
	if _, ok := FirstIncomplete(task); ok {
		t.Fatal("expected no incomplete sub-task")
	}
}
