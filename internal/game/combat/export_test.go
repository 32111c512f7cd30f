package combat

// SetHealthForTest forces the actor's current health for test setup.
func (a *Actor) SetHealthForTest(hp int) { a.currentHealth = hp }
