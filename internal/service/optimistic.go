package service

import "github.com/vetward/vetward/models"

// Optimistic mutators mirror, on the cached read state, exactly what the
// remote call would have done. They are pure functions over (cases, op) so
// they can be tested independently of the I/O-performing replay logic. The
// input slice is never mutated; callers persist the returned slice.

// applyOptimisticToList returns the case list with op applied.
func applyOptimisticToList(cases []models.SurgeryCase, op models.QueuedOperation) []models.SurgeryCase {
	switch op.Type {
	case models.OpCreateCase:
		if op.Payload.Case == nil {
			return cases
		}
		created := *op.Payload.Case
		created.ID = op.Payload.TempID
		out := make([]models.SurgeryCase, 0, len(cases)+1)
		out = append(out, cases...)
		return append(out, created)

	case models.OpDeleteCase:
		out := make([]models.SurgeryCase, 0, len(cases))
		for _, c := range cases {
			if c.ID != op.Payload.CaseID {
				out = append(out, c)
			}
		}
		return out

	default:
		out := make([]models.SurgeryCase, len(cases))
		for i, c := range cases {
			if c.ID == op.Payload.CaseID {
				c = applyOptimisticToCase(c, op)
			}
			out[i] = c
		}
		return out
	}
}

// applyOptimisticToCase returns the single case record with op applied.
// Create and delete variants do not apply at the record level and return
// the record unchanged.
func applyOptimisticToCase(c models.SurgeryCase, op models.QueuedOperation) models.SurgeryCase {
	switch op.Type {
	case models.OpUpdateCase:
		if op.Payload.Case == nil {
			return c
		}
		return mergeCaseFields(c, *op.Payload.Case)

	case models.OpToggleField:
		c.Todos = cloneTodos(c.Todos)
		c.Toggle(op.Payload.Field)
		return c

	case models.OpAddTodo:
		todos := cloneTodos(c.Todos)
		c.Todos = append(todos, models.TodoItem{
			ID:   op.Payload.TodoID,
			Text: op.Payload.TodoText,
		})
		return c

	case models.OpToggleTodo:
		todos := cloneTodos(c.Todos)
		for i := range todos {
			if todos[i].ID == op.Payload.TodoID {
				todos[i].Done = !todos[i].Done
			}
		}
		c.Todos = todos
		return c

	case models.OpDeleteTodo:
		todos := make([]models.TodoItem, 0, len(c.Todos))
		for _, todo := range c.Todos {
			if todo.ID != op.Payload.TodoID {
				todos = append(todos, todo)
			}
		}
		c.Todos = todos
		return c

	default:
		return c
	}
}

// mergeCaseFields merges the submitted fields of src into dst, matching the
// server's update semantics: demographics, procedure, scheduling, and notes
// are overwritten; checklist flags and the to-do list are owned by their
// dedicated toggle operations and stay untouched.
func mergeCaseFields(dst, src models.SurgeryCase) models.SurgeryCase {
	dst.PatientName = src.PatientName
	dst.Species = src.Species
	dst.Breed = src.Breed
	dst.Sex = src.Sex
	dst.DateOfBirth = src.DateOfBirth
	dst.OwnerName = src.OwnerName
	dst.Procedure = src.Procedure
	dst.ScheduledFor = src.ScheduledFor
	dst.Notes = src.Notes
	return dst
}

func cloneTodos(todos []models.TodoItem) []models.TodoItem {
	if todos == nil {
		return nil
	}
	out := make([]models.TodoItem, len(todos))
	copy(out, todos)
	return out
}
