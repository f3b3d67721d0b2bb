package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-backend/internal/wizard"
	"portfolio-backend/pkg/contactclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	payloads []wizard.Payload
	errs     []error
}

func (g *recordingGateway) Submit(_ context.Context, p wizard.Payload) error {
	g.payloads = append(g.payloads, p)
	if len(g.errs) == 0 {
		return nil
	}
	err := g.errs[0]
	g.errs = g.errs[1:]
	return err
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestRunBrief_HappyPath(t *testing.T) {
	gw := &recordingGateway{}
	var out bytes.Buffer

	err := runBrief(context.Background(), script(
		"Jane Doe",
		"jane@example.com",
		"3,1",
		"Hello there, this is a valid project brief.",
		"1",
		"2025-06-01",
		"",
		"s",
	), &out, gw)

	require.NoError(t, err)
	require.Len(t, gw.payloads, 1)
	p := gw.payloads[0]
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Contains(t, p.Message, "Project scope: Portfolio site, App features")
	assert.Contains(t, p.Message, "Goals: Hello there, this is a valid project brief.")
	assert.Contains(t, p.Message, "Desired start date: June 01, 2025")
	assert.Contains(t, out.String(), "Step 1 of 3")
	assert.Contains(t, out.String(), "Step 3 of 3")
	assert.Contains(t, out.String(), "OK: Brief sent!")
}

func TestRunBrief_ValidationGatesSteps(t *testing.T) {
	gw := &recordingGateway{}
	var out bytes.Buffer

	err := runBrief(context.Background(), script(
		"J",
		"bad",
		"Jane Doe",
		"jane@example.com",
	), &out, gw)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Name must be at least 2 characters")
	assert.Contains(t, out.String(), "Please enter a valid email address")
	assert.Contains(t, out.String(), "Step 2 of 3")
	assert.Contains(t, out.String(), "Aborted, nothing was sent.")
	assert.Empty(t, gw.payloads)
}

func TestRunBrief_ServerFieldErrorsReturnToStart(t *testing.T) {
	gw := &recordingGateway{errs: []error{&contactclient.Error{
		StatusCode: 400,
		Message:    "Validation failed",
		Fields:     map[string][]string{"email": {"Please enter a valid email address"}},
	}}}
	var out bytes.Buffer

	err := runBrief(context.Background(), script(
		"Jane Doe",
		"jane@example.com",
		"1",
		"Hello there, this is a valid project brief.",
		"2",
		"2025-06-01",
		"",
		"s",
		"Jane Doe",
	), &out, gw)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Some answers need another look.")
	assert.Contains(t, out.String(), "Email: Please enter a valid email address")
	assert.Contains(t, out.String(), "Email [jane@example.com]: ")
}

func TestRunBrief_TransportFailureStaysOnReview(t *testing.T) {
	gw := &recordingGateway{errs: []error{errors.New("connection refused")}}
	var out bytes.Buffer

	err := runBrief(context.Background(), script(
		"Jane Doe",
		"jane@example.com",
		"1",
		"Hello there, this is a valid project brief.",
		"4",
		"2025-06-01",
		"",
		"s",
		"s",
	), &out, gw)

	require.NoError(t, err)
	assert.Len(t, gw.payloads, 2)
	assert.Contains(t, out.String(), "Error: "+wizard.GenericErrorText)
	assert.Contains(t, out.String(), "OK: Brief sent!")
}

func TestRunBrief_EditFromReview(t *testing.T) {
	gw := &recordingGateway{}
	var out bytes.Buffer

	err := runBrief(context.Background(), script(
		"Jane Doe",
		"jane@example.com",
		"1",
		"Hello there, this is a valid project brief.",
		"1",
		"2025-06-01",
		"",
		"e 1",
		"Janet Doe",
		"",
		"<",
		"",
		"",
		"",
		"",
		"",
		"",
		"",
		"s",
	), &out, gw)

	require.NoError(t, err)
	require.Len(t, gw.payloads, 1)
	assert.Equal(t, "Janet Doe", gw.payloads[0].Name)
}
