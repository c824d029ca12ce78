// Command rrulecat prints the occurrences an RFC 5545 RRULE value denotes.
// It is a thin external collaborator over the rrule and rrule/ical
// packages, not part of the core API.
package main

func main() {
	Execute()
}
