// Package reminder creates "payment due tomorrow" notifications.
//
// A Scanner turns "now" into a calendar day in a fixed zone, picks the unpaid
// records whose due date is the next day and emits one reminder per record per
// eligibility day. Duplicates are prevented by the dedup ledger behind the
// Emitter, never by in-memory state, so a restarted process may scan the same
// day again safely. The Scheduler runs the Scanner on a cron schedule.
package reminder
