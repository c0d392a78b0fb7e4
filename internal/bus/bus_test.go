package bus

import "testing"

func TestPublish_DeliversInRegistrationOrder(t *testing.T) {
	b := New[int]()

	var order []string
	b.Subscribe(func(v int) { order = append(order, "first") })
	b.Subscribe(func(v int) { order = append(order, "second") })
	b.Subscribe(func(v int) { order = append(order, "third") })

	b.Publish(1)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("Publish() delivered to %d subscribers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestPublish_DeliversEventValue(t *testing.T) {
	b := New[string]()

	var got string
	b.Subscribe(func(v string) { got = v })

	b.Publish("hello")

	if got != "hello" {
		t.Errorf("subscriber received %q, want %q", got, "hello")
	}
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	b := New[int]()

	count := 0
	unsubscribe := b.Subscribe(func(v int) { count++ })

	b.Publish(1)
	unsubscribe()
	b.Publish(2)

	if count != 1 {
		t.Errorf("subscriber called %d times, want 1", count)
	}

	if b.Len() != 0 {
		t.Errorf("Len() = %d after unsubscribe, want 0", b.Len())
	}
}

func TestUnsubscribe_Twice(t *testing.T) {
	b := New[int]()

	unsubscribe := b.Subscribe(func(v int) {})
	other := b.Subscribe(func(v int) {})
	_ = other

	unsubscribe()
	unsubscribe()

	if b.Len() != 1 {
		t.Errorf("Len() = %d after double unsubscribe, want 1", b.Len())
	}
}

func TestPublish_NoSubscribers(t *testing.T) {
	b := New[int]()
	b.Publish(42)
}
