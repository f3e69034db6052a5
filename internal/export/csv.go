package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	model "todo-service.com/todo-service/internal/models"
)

const assigneeSeparator = "+"

var Header = []string{
	"id",
	"title",
	"description",
	"finished",
	"assignees",
	"createdDate",
	"dueDate",
	"finishedDate",
	"category",
	"priority",
}

// Row renders one todo in Header order.
func Row(todo model.Todo) []string {
	names := make([]string, 0, len(todo.Assignees))
	for _, a := range todo.Assignees {
		names = append(names, a.DisplayName())
	}

	finishedDate := ""
	if todo.FinishedDate != nil {
		finishedDate = todo.FinishedDate.String()
	}

	return []string{
		strconv.FormatUint(uint64(todo.ID), 10),
		todo.Title,
		todo.Description,
		strconv.FormatBool(todo.Finished),
		strings.Join(names, assigneeSeparator),
		todo.CreatedDate.String(),
		todo.DueDate.String(),
		finishedDate,
		string(todo.Category),
		string(todo.Priority),
	}
}

// WriteTodos writes the header and one CRLF-terminated record per todo, in
// the order given.
func WriteTodos(w io.Writer, todos []model.Todo) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, todo := range todos {
		if err := cw.Write(Row(todo)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
