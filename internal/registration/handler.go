package registration

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/EternisAI/signup-portal/internal/form"
)

// Element ids the handler expects in the document.
const (
	FormID     = "registrationForm"
	UsernameID = "username"
	EmailID    = "email"
	PasswordID = "password"
	MessageID  = "message"
)

// Handler intercepts submits on the registration form and posts the
// entered fields. Every submit dispatches its own request; the message
// element shows whichever response resolves last.
type Handler struct {
	submitter Submitter
	logger    *slog.Logger

	form     *form.Element
	username *form.Element
	email    *form.Element
	password *form.Element
	message  *form.Element

	inflight sync.WaitGroup
}

// Bind resolves every element the handler needs and registers it on the
// form's submit event. Missing elements are reported together.
func Bind(doc *form.Document, submitter Submitter, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		submitter: submitter,
		logger:    logger,
	}

	var errs []error
	lookup := func(id string) *form.Element {
		el, err := doc.Lookup(id)
		if err != nil {
			errs = append(errs, err)
		}
		return el
	}

	h.form = lookup(FormID)
	h.username = lookup(UsernameID)
	h.email = lookup(EmailID)
	h.password = lookup(PasswordID)
	h.message = lookup(MessageID)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	h.form.AddEventListener(form.EventSubmit, h.handleSubmit)
	return h, nil
}

func (h *Handler) handleSubmit(ev *form.Event) {
	ev.PreventDefault()

	payload := Payload{
		Username: h.username.Value(),
		Email:    h.email.Value(),
		Password: h.password.Value(),
	}

	h.inflight.Add(1)
	go h.dispatch(payload)
}

func (h *Handler) dispatch(payload Payload) {
	defer h.inflight.Done()

	err := h.submitter.Submit(context.Background(), payload)
	if err != nil {
		h.logger.Error("Registration failed", "error", err)
	}

	status := StatusFor(err)
	h.message.SetStatus(status.Text, status.Color)
}

// Wait blocks until every dispatched submission has resolved.
func (h *Handler) Wait() {
	h.inflight.Wait()
}
