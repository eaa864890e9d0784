// Package events announces changes the sync engine made to the cloud state
// so that other devices of a sphere can pull them.
//
// The sync engine talks to a [Notifier]. In production that is a
// [Dispatcher]: it queues events in memory and a background worker hands
// them to a [Publisher] (MQTT via paho). A full queue drops events rather
// than slowing down a sync call, since clients converge on their next sync
// anyway. Without a configured broker the engine gets [Nop].
package events
