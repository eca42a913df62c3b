package cli

import (
	"fmt"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/achievements"
	"github.com/nisu0001/bea-apa3.0/internal/notifier"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
)

type TodoCmd struct {
	Add    TodoAddCmd    `cmd:"" help:"Add a task. Supports !/!!/!!! priority, @today/@tomorrow/@nextweek deadlines and #tags."`
	List   TodoListCmd   `cmd:"" default:"1" help:"List tasks."`
	Done   TodoDoneCmd   `cmd:"" help:"Toggle a task's completion state."`
	Delete TodoDeleteCmd `cmd:"" help:"Delete a task."`
	Clear  TodoClearCmd  `cmd:"" help:"Remove all completed tasks."`
	Tags   TodoTagsCmd   `cmd:"" help:"List all tags in use."`
}

type TodoAddCmd struct {
	Text []string `arg:"" help:"Task text with optional shorthand markers."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	input := ""
	for i, word := range c.Text {
		if i > 0 {
			input += " "
		}
		input += word
	}

	now := time.Now()
	todos := todo.New(ctx.Store)
	item, err := todos.QuickAdd(input, now)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Println(FormatTodoLine(item, now))
	return nil
}

type TodoListCmd struct {
	All      bool   `help:"Include completed tasks."`
	Category string `help:"Only show tasks in this category."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	todos := todo.New(ctx.Store)
	if _, err := todos.ProcessRepeating(now); err != nil {
		return fmt.Errorf("failed to process repeating tasks: %w", err)
	}

	shown := 0
	for _, item := range todos.All() {
		if item.Completed && !c.All {
			continue
		}
		if c.Category != "" && item.Category != c.Category {
			continue
		}
		fmt.Println(FormatTodoLine(item, now))
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks. Add one with 'bea-apa todo add'.")
	}
	return nil
}

type TodoDoneCmd struct {
	ID int `arg:"" help:"Task id."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	todos := todo.New(ctx.Store)
	completed, err := todos.Toggle(c.ID, now)
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	if completed {
		doc := ctx.Store.Document()
		engine := achievements.NewEngine(ctx.Store, todos, notifier.New(doc.Style))
		if _, err := engine.Evaluate(now); err != nil {
			return fmt.Errorf("failed to evaluate achievements: %w", err)
		}
		fmt.Printf("Task #%d completed.\n", c.ID)
	} else {
		fmt.Printf("Task #%d reopened.\n", c.ID)
	}
	return nil
}

type TodoDeleteCmd struct {
	ID int `arg:"" help:"Task id."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	if err := todo.New(ctx.Store).Delete(c.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	fmt.Printf("Task #%d deleted.\n", c.ID)
	return nil
}

type TodoClearCmd struct{}

func (c *TodoClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	removed, err := todo.New(ctx.Store).ClearCompleted()
	if err != nil {
		return fmt.Errorf("failed to clear completed tasks: %w", err)
	}
	fmt.Printf("Removed %d completed task(s).\n", removed)
	return nil
}

type TodoTagsCmd struct{}

func (c *TodoTagsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	tags := todo.New(ctx.Store).AllTags()
	if len(tags) == 0 {
		fmt.Println("No tags in use.")
		return nil
	}
	for _, tag := range tags {
		fmt.Println("#" + tag)
	}
	return nil
}
