package domain_test

import (
	"testing"

	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestNotify_DispatchesEachEvent(t *testing.T) {
	var got []string
	l := &domain.ListenerFuncs{
		PreGameInit: func() { got = append(got, "init") },
		PreRound:    func() { got = append(got, "pre_round") },
		PostRound:   func() { got = append(got, "post_round") },
		PreTurn:     func() { got = append(got, "pre_turn") },
		PostTurn:    func() { got = append(got, "post_turn") },
	}

	for _, ev := range []domain.EventType{
		domain.EventPreGameInit,
		domain.EventPreRound,
		domain.EventPreTurn,
		domain.EventPostTurn,
		domain.EventPostRound,
	} {
		domain.Notify(l, ev)
	}

	assert.Equal(t, []string{"init", "pre_round", "pre_turn", "post_turn", "post_round"}, got)
}

func TestListenerFuncs_NilFieldsAreSkipped(t *testing.T) {
	l := &domain.ListenerFuncs{}
	assert.NotPanics(t, func() {
		l.OnPreGameInit()
		l.OnPreRound()
		l.OnPostRound()
		l.OnPreTurn()
		l.OnPostTurn()
	})
}

func TestNotify_UnknownEventIsIgnored(t *testing.T) {
	called := false
	l := &domain.ListenerFuncs{PreTurn: func() { called = true }}
	domain.Notify(l, domain.EventType("bogus"))
	assert.False(t, called)
}

func TestNopListener_SatisfiesInterface(t *testing.T) {
	var l domain.GameStateListener = domain.NopListener{}
	assert.NotPanics(t, func() { domain.Notify(l, domain.EventPostRound) })
}
