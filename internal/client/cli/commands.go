package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

var errNoView = errors.New("no collection selected")

// kindAliases maps what the user may type after "use" to a kind.
var kindAliases = map[string]string{
	"artist":      models.KindArtists,
	"artists":     models.KindArtists,
	"artwork":     models.KindArtworks,
	"artworks":    models.KindArtworks,
	"exhibition":  models.KindExhibitions,
	"exhibitions": models.KindExhibitions,
}

// Use switches to the collection named by args[0], refreshes it and prints it.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: use artists|artworks|exhibitions")
		return nil
	}
	kind, ok := kindAliases[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintln(a.out, "Unknown collection:", args[0])
		return nil
	}

	v := a.views[kind]
	a.current = v
	v.ClearMessage()
	if err := v.Activate(ctx); err != nil {
		a.report(v, err)
	}
	v.Print(a.out)
	return nil
}

func (a *App) List(ctx context.Context) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	v.Print(a.out)
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	if err := v.Refresh(ctx); err != nil {
		return a.report(v, err)
	}
	v.Print(a.out)
	return nil
}

// Form sets one field of the create form: "form <field> <value...>". Without
// arguments it prints the form.
func (a *App) Form(ctx context.Context, args []string) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		v.PrintForm(a.out)
		return nil
	}
	if err := v.SetFormField(args[0], strings.Join(args[1:], " ")); err != nil {
		return a.report(v, err)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	id, err := v.Add(ctx)
	if err != nil {
		return a.report(v, err)
	}
	fmt.Fprintf(a.out, "Created %d\n", id)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	id, err := a.parseID(args)
	if err != nil {
		return err
	}
	if err := v.Edit(id); err != nil {
		return a.report(v, err)
	}
	v.PrintForm(a.out)
	return nil
}

// Set changes one field of the edit draft: "set <field> <value...>".
func (a *App) Set(ctx context.Context, args []string) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: set <field> <value>")
		return nil
	}
	if err := v.Set(args[0], strings.Join(args[1:], " ")); err != nil {
		return a.report(v, err)
	}
	return nil
}

func (a *App) Save(ctx context.Context) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	if err := v.Save(ctx); err != nil {
		return a.report(v, err)
	}
	fmt.Fprintln(a.out, "Saved")
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	v.Cancel()
	return nil
}

// Delete asks for confirmation before deleting: "delete <id>". Declining
// sends nothing.
func (a *App) Delete(ctx context.Context, args []string) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	id, err := a.parseID(args)
	if err != nil {
		return err
	}

	token, err := v.RequestDelete(id)
	if err != nil {
		return a.report(v, err)
	}
	if !confirm(a.reader, fmt.Sprintf("Delete %d from %s?", id, v.Kind()), a.out) {
		fmt.Fprintln(a.out, "Not deleted")
		return v.DeclineDelete(token)
	}
	if err := v.ConfirmDelete(ctx, token); err != nil {
		return a.report(v, err)
	}
	fmt.Fprintf(a.out, "Deleted %d\n", id)
	return nil
}

// Choices prints the selectable values of a reference field.
func (a *App) Choices(ctx context.Context, args []string) error {
	v, err := a.view()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: choices <field>")
		return nil
	}
	choices, err := v.Choices(args[0])
	if err != nil {
		return a.report(v, err)
	}
	for _, c := range choices {
		if c.IsSentinel() {
			fmt.Fprintf(a.out, "  %6s  %s\n", `""`, c.Label)
			continue
		}
		fmt.Fprintf(a.out, "  %6s  %s\n", c.Value, c.Label)
	}
	return nil
}

func (a *App) view() (view, error) {
	if a.current == nil {
		fmt.Fprintln(a.out, "No collection selected. Type: use artists|artworks|exhibitions")
		return nil, errNoView
	}
	a.current.ClearMessage()
	return a.current, nil
}

func (a *App) parseID(args []string) (int64, error) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: <command> <id>")
		return 0, errors.New("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not an id:", args[0])
		return 0, err
	}
	return id, nil
}

// report prints the view's message for err, falling back to err itself for
// local failures that never reach the message slot, and returns err.
func (a *App) report(v view, err error) error {
	if msg := v.Message(); msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
	} else {
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}
