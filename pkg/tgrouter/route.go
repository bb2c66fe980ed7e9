package tgrouter

// Route binds an update filter to its handler chain. Conversation routes
// additionally consult the stored per-chat state before matching.
type Route struct {
	filter   Filter[any]
	handlers Handler
	rtype    Type
}

type Type int

const (
	MessageRoute Type = iota + 1
	ConversationRoute
)

type Option func(*Route)

func newRoute[F FilterType](filter Filter[F], handlers Handler, options ...Option) Route {
	route := Route{
		filter:   Filter[any](filter),
		handlers: handlers,
	}

	for _, opt := range options {
		opt(&route)
	}

	if _, ok := any(filter).(Filter[StateFilter]); ok {
		route.rtype = ConversationRoute
	}

	return route
}
