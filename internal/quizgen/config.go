package quizgen

// Config selects the strategies a Generator uses.
type Config struct {
	// Distractors names the DistractorStrategy ("uniform", "segmented", "letter").
	Distractors string

	// Picker names the TargetPicker ("random", "deck", "letter").
	Picker string

	// Validators run in order on every built question; the first
	// failure stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns uniform distractors, random targets and the
// structural validator.
func DefaultConfig() Config {
	return Config{
		Distractors: DistractorUniform,
		Picker:      PickerRandom,
		Validators:  []Validator{&StructuralValidator{}},
	}
}
