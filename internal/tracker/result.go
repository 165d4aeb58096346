package tracker

import (
	"fmt"

	"github.com/colonyops/blob/internal/core/task"
)

// Result is what a command hands to the presenter.
type Result struct {
	Messages []string
	// Exit ends the session after the messages are shown.
	Exit bool
}

// Greeting is shown when a session starts.
func Greeting() Result {
	return Result{Messages: []string{"Hello! I'm Blob.", "What can I do for you?"}}
}

func byeResult() Result {
	return Result{Messages: []string{"Bye. Hope to see you again soon!"}, Exit: true}
}

func countLine(n int) string {
	return fmt.Sprintf("Now you have %d task(s) in the list.", n)
}

func numbered(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d. %s", i+1, line)
	}
	return out
}

func listResult(lines []string) Result {
	if len(lines) == 0 {
		return Result{Messages: []string{"Your task list is empty."}}
	}
	msgs := append([]string{"Here are the tasks in your list:"}, numbered(lines)...)
	return Result{Messages: msgs}
}

func findResult(lines []string) Result {
	if len(lines) == 0 {
		return Result{Messages: []string{"No matching tasks found."}}
	}
	header := fmt.Sprintf("Here are the %d matching task(s) in your list:", len(lines))
	return Result{Messages: append([]string{header}, numbered(lines)...)}
}

func addedResult(t task.Task, n int) Result {
	return Result{Messages: []string{
		"Got it. I've added this task:",
		"  " + t.Display(),
		countLine(n),
	}}
}

func markedResult(t task.Task) Result {
	return Result{Messages: []string{
		"Nice! I've marked this task as done:",
		"  " + t.Display(),
	}}
}

func unmarkedResult(t task.Task) Result {
	return Result{Messages: []string{
		"OK, I've marked this task as not done yet:",
		"  " + t.Display(),
	}}
}

func deletedResult(t task.Task, n int) Result {
	return Result{Messages: []string{
		"Noted. I've removed this task:",
		"  " + t.Display(),
		countLine(n),
	}}
}
