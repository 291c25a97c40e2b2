package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient toast.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

// Toaster is the top-right toast container. A server-rendered notification is
// placed inside it; toast.js adds client-side ones and dismisses all of them.
func Toaster(n *Notification) g.Node {
	nodes := []g.Node{
		ID("toaster"),
		Class("toaster"),
		g.Attr("aria-live", "polite"),
	}
	if n != nil {
		nodes = append(nodes, Toast(n))
	}
	return Div(nodes...)
}

func Toast(n *Notification) g.Node {
	role := "status"
	if n.Kind == NotificationError {
		role = "alert"
	}

	return Div(
		Class("toast toast-"+string(n.Kind)),
		g.Attr("role", role),
		g.Attr("data-toast", ""),
		P(Class("toast-title"), g.Text(n.Title)),
		g.If(n.Description != "", P(Class("toast-description"), g.Text(n.Description))),
	)
}
