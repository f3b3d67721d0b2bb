package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"portfolio-backend/internal/wizard"
	"portfolio-backend/pkg/validation"
)

var errBack = errors.New("back")

const (
	backToken  = "<"
	clearToken = "-"
)

// console is the terminal side of the wizard. It doubles as the Notifier.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func (c *console) Notify(n wizard.Notification) {
	prefix := "OK"
	if n.Kind == wizard.NotifyError {
		prefix = "Error"
	}
	fmt.Fprintf(c.out, "\n%s: %s\n", prefix, n.Text)
}

// ask reads one answer. Enter keeps current, "-" clears it.
func (c *console) ask(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(c.in.Text())
	switch line {
	case "":
		return current, nil
	case backToken:
		return "", errBack
	case clearToken:
		return "", nil
	}
	return line, nil
}

func runBrief(ctx context.Context, in io.Reader, out io.Writer, gw wizard.Gateway) error {
	c := &console{in: bufio.NewScanner(in), out: out}
	sess := wizard.NewSession(wizard.Deps{Gateway: gw, Notifier: c})
	defer sess.Close()

	for {
		st := sess.State()
		fmt.Fprintf(out, "\n%s · %s\n%s\n", st.Step.Indicator(), st.Step.Title(), st.Step.Description())

		var done bool
		var err error
		if st.Step == wizard.StepReview {
			done, err = c.review(ctx, sess, st)
		} else {
			err = c.fill(sess, st)
		}

		switch {
		case errors.Is(err, errBack):
			if _, err := sess.Retreat(); err != nil {
				return err
			}
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out, "\nAborted, nothing was sent.")
			return nil
		case err != nil:
			return err
		case done:
			return nil
		}
	}
}

// fill prompts for the current step's fields and tries to advance.
func (c *console) fill(sess *wizard.Session, st wizard.State) error {
	d := st.Draft
	var err error

	switch st.Step {
	case wizard.StepIdentity:
		if d.Name, err = c.ask("Name", d.Name); err != nil {
			return err
		}
		if d.Email, err = c.ask("Email", d.Email); err != nil {
			return err
		}
	case wizard.StepScope:
		if d.ProjectScope, err = c.askScopes(d.ProjectScope); err != nil {
			return err
		}
		if d.Goals, err = c.ask("Goals", d.Goals); err != nil {
			return err
		}
	case wizard.StepLogistics:
		if d.BudgetRange, err = c.askBudget(d.BudgetRange); err != nil {
			return err
		}
		if d.StartDate, err = c.ask("Desired start date (YYYY-MM-DD)", d.StartDate); err != nil {
			return err
		}
		if d.TimelineNotes, err = c.ask("Timing notes (optional)", d.TimelineNotes); err != nil {
			return err
		}
	}

	updates := []struct {
		field wizard.Field
		value any
	}{
		{wizard.FieldName, d.Name},
		{wizard.FieldEmail, d.Email},
		{wizard.FieldProjectScope, d.ProjectScope},
		{wizard.FieldGoals, d.Goals},
		{wizard.FieldBudgetRange, d.BudgetRange},
		{wizard.FieldStartDate, d.StartDate},
		{wizard.FieldTimelineNotes, d.TimelineNotes},
	}
	for _, u := range updates {
		if _, err := sess.UpdateField(u.field, u.value); err != nil {
			return err
		}
	}

	next, err := sess.Advance()
	if err != nil {
		return err
	}
	if next.Step == st.Step {
		c.printErrors(next, st.Step.Fields())
	}
	return nil
}

func (c *console) askScopes(current []wizard.Scope) ([]wizard.Scope, error) {
	var selected []string
	for i, s := range wizard.Scopes {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, s.Label())
		if slices.Contains(current, s) {
			selected = append(selected, strconv.Itoa(i+1))
		}
	}
	answer, err := c.ask("Project scope (comma-separated numbers)", strings.Join(selected, ","))
	if err != nil {
		return nil, err
	}

	var scopes []wizard.Scope
	for _, tok := range strings.Split(answer, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(wizard.Scopes) {
			scopes = append(scopes, wizard.Scopes[n-1])
			continue
		}
		// Left for validation to reject.
		scopes = append(scopes, wizard.Scope(tok))
	}
	return scopes, nil
}

func (c *console) askBudget(current wizard.Budget) (wizard.Budget, error) {
	var selected string
	for i, b := range wizard.Budgets {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, b.Label())
		if b == current {
			selected = strconv.Itoa(i + 1)
		}
	}
	answer, err := c.ask("Budget range", selected)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(wizard.Budgets) {
		return wizard.Budgets[n-1], nil
	}
	return wizard.Budget(answer), nil
}

// review shows the composed message and handles submit/edit/back/quit.
func (c *console) review(ctx context.Context, sess *wizard.Session, st wizard.State) (bool, error) {
	fmt.Fprintf(c.out, "\nName: %s\nEmail: %s\n\n%s\n\n", st.Draft.Name, st.Draft.Email, wizard.ComposeMessage(st.Draft))

	answer, err := c.ask("[s]ubmit, [e]dit 1-3, [b]ack, [q]uit", "")
	if err != nil {
		return false, err
	}

	cmd, arg, _ := strings.Cut(answer, " ")
	switch strings.ToLower(cmd) {
	case "s", "submit":
		outcome, err := sess.Submit(ctx)
		if err != nil {
			return false, err
		}
		switch outcome {
		case wizard.OutcomeSent:
			return true, nil
		case wizard.OutcomeRejected, wizard.OutcomeInvalid:
			next := sess.State()
			fmt.Fprintln(c.out, "\nSome answers need another look.")
			c.printErrors(next, allFields())
		}
		return false, nil
	case "e", "edit":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 1 || n > wizard.TotalSteps {
			fmt.Fprintln(c.out, "Usage: e <step 1-3>")
			return false, nil
		}
		_, err = sess.JumpToStep(wizard.Step(n - 1))
		return false, err
	case "b", "back":
		return false, errBack
	case "q", "quit":
		return false, io.EOF
	default:
		fmt.Fprintln(c.out, "Unknown choice.")
		return false, nil
	}
}

func (c *console) printErrors(st wizard.State, fields []wizard.Field) {
	for _, f := range fields {
		if msg := st.Error(f); msg != "" {
			label := validation.FieldLabels[string(f)]
			fmt.Fprintf(c.out, "  ! %s: %s\n", label, msg)
		}
	}
}

func allFields() []wizard.Field {
	var fields []wizard.Field
	for step := wizard.StepIdentity; step < wizard.StepReview; step++ {
		fields = append(fields, step.Fields()...)
	}
	return fields
}
