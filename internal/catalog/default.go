package catalog

// Default returns the built-in aviation quiz catalog. Ten questions with
// stable IDs "1".."10"; anything outside that set is invalid input.
func Default() Store {
	s, err := NewStaticStore(defaultQuestions)
	if err != nil {
		// the built-in set is checked by tests; a broken build-in is a bug
		panic(err)
	}
	return s
}

var defaultQuestions = []Question{
	{
		ID:          "1",
		Type:        TypeText,
		Prompt:      "What does ICAO stand for?",
		CorrectText: "International Civil Aviation Organization",
	},
	{
		ID:          "2",
		Type:        TypeText,
		Prompt:      "What is the standard cruising altitude for most commercial jets in feet?",
		CorrectText: "35000",
	},
	{
		ID:          "3",
		Type:        TypeText,
		Prompt:      "What does VFR stand for?",
		CorrectText: "Visual Flight Rules",
	},
	{
		ID:           "4",
		Type:         TypeRadio,
		Prompt:       "What is the maximum speed limit below 10,000 feet in the US?",
		Choices:      []string{"200 knots", "250 knots", "300 knots", "350 knots"},
		CorrectIndex: 1,
	},
	{
		ID:           "5",
		Type:         TypeRadio,
		Prompt:       "Which aircraft manufacturer produces the 737?",
		Choices:      []string{"Airbus", "Boeing", "Bombardier", "Embraer"},
		CorrectIndex: 1,
	},
	{
		ID:           "6",
		Type:         TypeRadio,
		Prompt:       "What color are the recorders (black boxes) actually painted?",
		Choices:      []string{"Black", "Orange", "Yellow", "Red"},
		CorrectIndex: 1,
	},
	{
		ID:           "7",
		Type:         TypeRadio,
		Prompt:       `What is the phonetic alphabet for the letter "A"?`,
		Choices:      []string{"Alpha", "Able", "Adam", "Apple"},
		CorrectIndex: 0,
	},
	{
		ID:             "8",
		Type:           TypeCheckbox,
		Prompt:         "Which of these are types of aircraft engines?",
		Choices:        []string{"Turbofan", "Piston", "Turboprop", "Diesel", "Jet"},
		CorrectIndexes: []int{0, 1, 2, 4},
	},
	{
		ID:             "9",
		Type:           TypeCheckbox,
		Prompt:         "Select all instruments found in a basic aircraft cockpit:",
		Choices:        []string{"Altimeter", "Speedometer", "Airspeed Indicator", "Tachometer", "Attitude Indicator"},
		CorrectIndexes: []int{0, 2, 4},
	},
	{
		ID:             "10",
		Type:           TypeCheckbox,
		Prompt:         "Which of these are major aircraft manufacturers?",
		Choices:        []string{"Boeing", "Tesla", "Airbus", "Ford", "Embraer"},
		CorrectIndexes: []int{0, 2, 4},
	},
}
