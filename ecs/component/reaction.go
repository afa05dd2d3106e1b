package component

// Reaction attaches a scripted collision response to a prop. Script is a
// prefab-relative tengo script path; the script system runs its on_contact
// function when the prop's shape begins a contact.
type Reaction struct {
	Script string
	// Once reactions detach after their first trigger.
	Once  bool
	Fired bool
}

var ReactionComponent = NewComponent[Reaction]()
