package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jjanuszczak/Genetic-Insights/internal/components"
	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
	"github.com/jjanuszczak/Genetic-Insights/pkg/apperror"
)

const maxFormBytes = 16 << 10

// RegisterResponse is the JSON body of a successful registration
type RegisterResponse struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WantsJSON reports whether the caller asked for a JSON response.
// register.js sends Accept: application/json; a plain form post does not.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Register handles the registration form post.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, components.FormState{}, apperror.NewBadRequest("Could not read the registration form."))
		return
	}

	sub := registration.Submission{
		Name:  r.PostForm.Get(registration.FieldName),
		Email: r.PostForm.Get(registration.FieldEmail),
	}

	res, err := h.svc.Register(r.Context(), sub)
	if err == nil {
		if WantsJSON(r) {
			writeJSON(w, http.StatusOK, RegisterResponse{
				Status:      "ok",
				Title:       res.Title,
				Description: res.Description,
			})
			return
		}
		// success clears the form
		h.renderPage(w, http.StatusOK, components.FormState{
			Notification: &components.Notification{
				Kind:        components.NotificationSuccess,
				Title:       res.Title,
				Description: res.Description,
			},
		})
		return
	}

	state := components.FormState{Values: sub}

	var verrs registration.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		state.Errors = verrs.Fields()
		h.fail(w, r, state, apperror.NewValidation(state.Errors))

	case registration.IsDeliveryFailure(err):
		state.Notification = &components.Notification{
			Kind:        components.NotificationError,
			Title:       registration.FailureTitle,
			Description: registration.FailureDescription,
		}
		h.fail(w, r, state, apperror.ErrRegistrationFailed.WithInternal(err))

	default:
		state.Notification = &components.Notification{
			Kind:        components.NotificationError,
			Title:       registration.FailureTitle,
			Description: registration.FailureDescription,
		}
		h.fail(w, r, state, apperror.ErrInternal.WithInternal(err))
	}
}

// RateLimited answers a registration refused by the rate limiter.
func (h *Handler) RateLimited(w http.ResponseWriter, r *http.Request) {
	registration.ObserveOutcome(registration.OutcomeRateLimited)
	h.log.Warn("registration rate limited", slog.String("remote", r.RemoteAddr))

	_ = r.ParseForm()
	h.fail(w, r, components.FormState{
		Values: registration.Submission{
			Name:  r.PostForm.Get(registration.FieldName),
			Email: r.PostForm.Get(registration.FieldEmail),
		},
		Notification: &components.Notification{
			Kind:        components.NotificationError,
			Title:       "Too many attempts.",
			Description: "Please wait a minute before trying again.",
		},
	}, apperror.ErrRateLimited)
}

// fail writes appErr as JSON or re-renders the page with state.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, state components.FormState, appErr *apperror.Error) {
	if WantsJSON(r) {
		apperror.WriteJSON(w, r, h.log, appErr)
		return
	}
	h.renderPage(w, appErr.HTTPStatus, state)
}
