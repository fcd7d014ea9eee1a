package app

import (
	"strconv"

	"github.com/3-lines-studio/elysium"
	"github.com/3-lines-studio/elysium/internal/db"
)

func homePage(pc *elysium.PageContext) (*elysium.Node, error) {
	link := elysium.El("a", elysium.Attributes{}.
		Set("href", "/todos").
		Set("class", "text-blue-600 underline"),
		elysium.Text("Open the todo list"),
	)

	return elysium.El("main", elysium.Attributes{}.Set("class", "mx-auto max-w-xl p-8"),
		elysium.Card(elysium.CardConfig{
			Title:    "Elysium",
			Subtitle: "Server-rendered components",
			Children: []*elysium.Node{
				elysium.El("p", nil, elysium.Text("Buttons, inputs and cards rendered on the server.")),
			},
			Footer: link,
		}),
	), nil
}

func todosPage(pc *elysium.PageContext) (*elysium.Node, error) {
	todos, _ := pc.Props["todos"].([]db.Todo)

	form := elysium.El("form", elysium.Attributes{}.
		Set("method", "post").
		Set("action", "/todos").
		Set("class", "flex flex-col"),
		elysium.Input(elysium.InputConfig{
			Label:       "New todo",
			Name:        "title",
			Value:       pc.Prop("title"),
			Placeholder: "What needs doing?",
			Required:    true,
			Error:       pc.Prop("error"),
			HelperText:  "Press Add to save it.",
			IDs:         pc.IDs,
		}),
		elysium.Button(elysium.ButtonConfig{
			Type:     "submit",
			Variant:  "primary",
			Children: []*elysium.Node{elysium.Text("Add")},
		}),
	)

	return elysium.El("main", elysium.Attributes{}.Set("class", "mx-auto max-w-xl p-8"),
		elysium.Card(elysium.CardConfig{
			Title:    "Todos",
			Subtitle: strconv.Itoa(len(todos)) + " items",
			Children: []*elysium.Node{todoList(todos)},
			Footer:   form,
		}),
	), nil
}

func todoList(todos []db.Todo) *elysium.Node {
	if len(todos) == 0 {
		return elysium.El("p", elysium.Attributes{}.Set("class", "text-gray-500"), elysium.Text("Nothing to do."))
	}

	items := make([]*elysium.Node, 0, len(todos))
	for _, todo := range todos {
		items = append(items, todoItem(todo))
	}
	return elysium.El("ul", elysium.Attributes{}.Set("class", "divide-y"), items...)
}

func todoItem(todo db.Todo) *elysium.Node {
	variant, label := "success", "Done"
	titleClass := ""
	if todo.Done {
		variant, label = "secondary", "Undo"
		titleClass = "line-through text-gray-400"
	}
	id := strconv.FormatInt(todo.ID, 10)

	return elysium.El("li", elysium.Attributes{}.
		Set("class", "flex items-center justify-between py-2").
		Set("data-todo", id),
		elysium.El("span", elysium.Attributes{}.SetNonEmpty("class", titleClass), elysium.Text(todo.Title)),
		elysium.El("form", elysium.Attributes{}.
			Set("method", "post").
			Set("action", "/todos/"+id+"/toggle"),
			elysium.Button(elysium.ButtonConfig{
				Type:     "submit",
				Variant:  variant,
				Size:     "sm",
				Children: []*elysium.Node{elysium.Text(label)},
			}),
		),
	)
}
