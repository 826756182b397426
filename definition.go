package elicit

// Definition is the top-level survey structure: an ordered list of questions
// plus optional framing text. It is presentation-agnostic: the same
// definition drives sequential wizards, simultaneous-field forms, and static
// document generators. A definition is produced fresh per run and owned
// outright by its holder; nothing in it is shared or cyclic.
type Definition struct {
	// Prelude is shown before the survey starts, when the surface supports it.
	Prelude string

	// Questions in declaration order; entries may nest AllOf/OneOf/AnyOf.
	Questions []Question

	// Epilogue is shown after the survey completes.
	Epilogue string
}

// NewDefinition builds a definition over the given questions.
func NewDefinition(questions []Question) Definition {
	return Definition{Questions: questions}
}

// WithPrelude sets the prelude message.
func (d Definition) WithPrelude(msg string) Definition {
	d.Prelude = msg
	return d
}

// WithEpilogue sets the epilogue message.
func (d Definition) WithEpilogue(msg string) Definition {
	d.Epilogue = msg
	return d
}

// IsEmpty reports whether the definition holds no questions.
func (d Definition) IsEmpty() bool { return len(d.Questions) == 0 }

// Len returns the number of top-level questions.
func (d Definition) Len() int { return len(d.Questions) }
