package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar() g.Node {
	return Header(
		Class("topbar"),
		Div(
			Class("container flex justify-between items-center h-16"),
			Logos(),
			RegisterButton("max-sm:hidden"),
		),
	)
}
