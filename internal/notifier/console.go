package notifier

import "log"

// ConsoleNotifier writes notifications to the process log. It stands
// in for a platform notification surface and never denies permission.
type ConsoleNotifier struct{}

func (c *ConsoleNotifier) RequestPermission() bool { return true }

func (c *ConsoleNotifier) Show(title, body string) error {
	log.Printf("NOTIFICATION: %s | %s", title, body)
	return nil
}
