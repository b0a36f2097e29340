// bus/bus_test.go
package bus

import "testing"

func expectPayload(t *testing.T, s *Subscription, want any) {
	t.Helper()
	m, ok := s.TryRecv()
	if !ok {
		t.Fatalf("%v: no message, want %v", s.Topic(), want)
	}
	if m.Payload != want {
		t.Fatalf("%v: got %v want %v", s.Topic(), m.Payload, want)
	}
}

func expectNoMessage(t *testing.T, s *Subscription) {
	t.Helper()
	if m, ok := s.TryRecv(); ok {
		t.Fatalf("%v: unexpected message %v on %v", s.Topic(), m.Payload, m.Topic)
	}
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	sub := c.Subscribe(T("eyes", "mode"))

	c.Publish(&Message{Topic: T("eyes", "mode"), Payload: "slot"})
	expectPayload(t, sub, "slot")
	expectNoMessage(t, sub)

	c.Publish(&Message{Topic: T("eyes", "phase"), Payload: "x"})
	expectNoMessage(t, sub)
}

func TestRetainedReplayAndClear(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")

	c.PublishRetained(T("lamps", "state"), 1)
	c.PublishRetained(T("lamps", "state"), 2)

	sub := c.Subscribe(T("lamps", "state"))
	expectPayload(t, sub, 2)
	expectNoMessage(t, sub)

	if m, ok := b.Retained(T("lamps", "state")); !ok || m.Payload != 2 {
		t.Fatalf("retained = %v", m)
	}

	c.PublishRetained(T("lamps", "state"), nil)
	expectPayload(t, sub, nil)
	if _, ok := b.Retained(T("lamps", "state")); ok {
		t.Fatal("nil payload must clear the retained message")
	}
	late := c.Subscribe(T("lamps", "state"))
	expectNoMessage(t, late)
}

func TestWildcards(t *testing.T) {
	b := NewBus(8)
	c := b.NewConnection("test")

	single := c.Subscribe(T("eyes", SingleLevel))
	multi := c.Subscribe(T("eyes", MultiLevel))
	all := c.Subscribe(T(MultiLevel))
	other := c.Subscribe(T("lamps", SingleLevel))

	c.Publish(&Message{Topic: T("eyes", "mode"), Payload: "m"})
	expectPayload(t, single, "m")
	expectPayload(t, multi, "m")
	expectPayload(t, all, "m")
	expectNoMessage(t, other)

	c.Publish(&Message{Topic: T("eyes", "slot", "result"), Payload: "r"})
	expectNoMessage(t, single)
	expectPayload(t, multi, "r")
	expectPayload(t, all, "r")

	// '#' also matches its parent level.
	c.Publish(&Message{Topic: T("eyes"), Payload: "p"})
	expectNoMessage(t, single)
	expectPayload(t, multi, "p")
}

func TestRetainedReplayThroughWildcards(t *testing.T) {
	b := NewBus(8)
	c := b.NewConnection("test")
	c.PublishRetained(T("eyes", "mode"), "idle")
	c.PublishRetained(T("eyes", "phase"), "none")
	c.PublishRetained(T("lamps", "state"), "off")

	sub := c.Subscribe(T("eyes", MultiLevel))
	got := map[any]bool{}
	for {
		m, ok := sub.TryRecv()
		if !ok {
			break
		}
		got[m.Payload] = true
	}
	if len(got) != 2 || !got["idle"] || !got["none"] {
		t.Fatalf("replayed %v", got)
	}

	plus := c.Subscribe(T(SingleLevel, "state"))
	expectPayload(t, plus, "off")
	expectNoMessage(t, plus)
}

func TestFullQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	sub := c.Subscribe(T("a"))
	for i := 1; i <= 3; i++ {
		c.Publish(&Message{Topic: T("a"), Payload: i})
	}
	expectPayload(t, sub, 2)
	expectPayload(t, sub, 3)
	expectNoMessage(t, sub)
}

func TestUnsubscribeAndDisconnect(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	s1 := c.Subscribe(T("a", "b"))
	s2 := c.Subscribe(T("a", SingleLevel))

	s1.Unsubscribe()
	if _, ok := <-s1.Channel(); ok {
		t.Fatal("channel open after Unsubscribe")
	}
	s1.Unsubscribe() // second call is a no-op

	c.Publish(&Message{Topic: T("a", "b"), Payload: "x"})
	expectPayload(t, s2, "x")

	c.Disconnect()
	if _, ok := <-s2.Channel(); ok {
		t.Fatal("channel open after Disconnect")
	}
	if len(b.subs.children) != 0 {
		t.Fatalf("subscription trie not pruned: %v", b.subs.children)
	}
	// Publishing with no subscribers is harmless.
	c.Publish(&Message{Topic: T("a", "b"), Payload: "y"})
}

func TestTopicHelpers(t *testing.T) {
	if T("eyes", "mode").String() != "eyes/mode" {
		t.Fatal("String")
	}
	if !T("a", "b").Equal(Topic{"a", "b"}) || T("a").Equal(T("a", "b")) || T("a", "c").Equal(T("a", "b")) {
		t.Fatal("Equal")
	}
}
