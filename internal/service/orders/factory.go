package orders

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type action struct {
	name string
	fn   actionFunc
}

type actionFactory struct {
	byStatus map[string]action
}

func newActionFactory(onCreated, onCanceled, onCompleted actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]action{
			"created":   {name: "assign", fn: onCreated},
			"canceled":  {name: "cancel", fn: onCanceled},
			"cancelled": {name: "cancel", fn: onCanceled},
			"deleted":   {name: "cancel", fn: onCanceled},
			"completed": {name: "complete", fn: onCompleted},
		},
	}
}

func (f *actionFactory) get(status string) (action, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	a, ok := f.byStatus[status]
	return a, ok
}
