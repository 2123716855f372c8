package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/model"
	"kharch/internal/query"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formValues struct {
	item     string
	price    string
	category string
	month    string
	remarks  string
}

// openForm builds the add/edit overlay. id 0 means a new expense.
func (a App) openForm(id int64) (tea.Model, tea.Cmd) {
	a.editID = id
	a.formVals = formValues{
		category: "miscellaneous",
		month:    model.CurrentMonth(time.Now()),
	}
	if a.month != query.MonthAll {
		a.formVals.month = a.month
	}

	title := "Add expense"
	if id != 0 {
		e, err := a.ls.Get(id)
		if err != nil {
			a.status = err.Error()
			a.editID = 0
			return a, nil
		}
		title = "Edit expense"
		a.formVals = formValues{
			item:     e.Item,
			price:    strconv.FormatFloat(e.Price, 'f', -1, 64),
			category: e.Category,
			month:    e.Month,
			remarks:  e.Remarks,
		}
	}

	catOptions := []huh.Option[string]{}
	for _, c := range a.ls.Categories().All() {
		catOptions = append(catOptions, huh.NewOption(c.Emoji+" "+c.Name, c.ID))
	}

	monthOptions := []huh.Option[string]{}
	for _, m := range model.Months {
		monthOptions = append(monthOptions, huh.NewOption(model.DisplayMonth(m), m))
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Item").
				Value(&a.formVals.item).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter an item name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Price").
				Value(&a.formVals.price).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return errors.New("enter a price greater than zero")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOptions...).
				Value(&a.formVals.category),
			huh.NewSelect[string]().
				Title("Month").
				Options(monthOptions...).
				Value(&a.formVals.month),
			huh.NewInput().
				Title("Remarks").
				Value(&a.formVals.remarks),
		),
	)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.editID = 0
		return a, nil
	}

	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	price, _ := strconv.ParseFloat(strings.TrimSpace(a.formVals.price), 64)
	draft := model.Draft{
		Item:     a.formVals.item,
		Category: a.formVals.category,
		Price:    price,
		Date:     time.Now(),
		Month:    a.formVals.month,
		Remarks:  a.formVals.remarks,
	}

	var err error
	if a.editID == 0 {
		_, err = a.ls.Add(draft)
		a.status = fmt.Sprintf("added %s", draft.Item)
	} else {
		draft.Date = time.Time{} // keep the original date on edit
		if existing, getErr := a.ls.Get(a.editID); getErr == nil {
			draft.Date = existing.Date
		}
		_, err = a.ls.Update(a.editID, draft)
		a.status = fmt.Sprintf("updated %s", draft.Item)
	}
	if err != nil {
		a.status = err.Error()
	}

	a.form = nil
	a.editID = 0
	a.recompute()
	return a, nil
}
