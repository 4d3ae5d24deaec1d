package debounce

// Input is the sampled source a Debouncer polls: the instantaneous, possibly
// bouncing level of the raw line.
//
// ReadHigh and ReadLow are logically complementary. The Debouncer uses ReadLow
// as the authoritative decrement trigger and treats any non-low reading as the
// increment trigger.
//
// Between Init and Deinit the Debouncer owns its Input exclusively; no other
// code may use the handle during that window.
type Input interface {
	ReadHigh() (bool, error)
	ReadLow() (bool, error)
}
