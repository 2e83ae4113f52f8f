package event

// Catalog is the ELIXIR'26 event lineup. Not user-mutable.
var Catalog = []Event{
	{
		ID:         "tech-hunt",
		Title:      "TECH HUNT",
		Category:   Technical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "10:30 AM",
		Rounds: []Round{
			{Name: "ROUND 1: THE QUALIFIER", Details: "A traditional pen-and-paper challenge. 30 questions in 30 minutes covering current affairs, general knowledge, and technical concepts."},
			{Name: "ROUND 2: THE TECHNICAL DEEP-DIVE", Details: "Pen-and-paper round for qualifying teams. 15 complex questions in 45 minutes, exclusively technical subjects."},
		},
		Rules: []string{
			"Language of the questions are in English.",
			"Participants must wear your college ID card.",
			"Mobile phones and electronic devices are strictly prohibited.",
			"Teams must strictly adhere to the allocated time limits.",
			"Any form of malpractice or cheating will lead to immediate disqualification.",
			"The judges' decisions are final and binding.",
			"Participation certificate will be provided.",
		},
		Coordinators: []Coordinator{
			{Name: "SUNDHARAMOORTHI K", Phone: "8248121866"},
			{Name: "JOSHIYA P", Phone: "6374225635"},
		},
	},
	{
		ID:         "embedded-mind",
		Title:      "EMBEDDED MIND",
		Category:   Technical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "11:00 AM",
		Rounds: []Round{
			{Name: "ROUND 1", Details: "Buzzer format; C logic riddles, output prediction, and pattern puzzles. No coding or syntax required."},
			{Name: "ROUND 2", Details: "Qualified teams mentally simulate C code snippets and embedded scenarios and predict the system output. Accuracy and speed determine the score."},
		},
		Rules: []string{
			"No coding or syntax required, only thinking.",
			"The use of any electronic gadgets is strictly prohibited.",
			"Coordinator's decision is final.",
		},
		Coordinators: []Coordinator{
			{Name: "Barath Kumar M", Phone: "6380616416"},
			{Name: "Kaviyadharsana R", Phone: "8778331063"},
		},
	},
	{
		ID:         "memory-matrix",
		Title:      "MEMORY MATRIX",
		Category:   NonTechnical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "02:00 PM",
		Rounds: []Round{
			{Name: "ROUND 1: PICTURE ARRANGEMENT", Details: "Pictures are shown in a specific order, then shuffled; participants must restore the correct order."},
			{Name: "ROUND 2: RECALL & WRITE", Details: "Images are displayed through PPT; after the slides end, participants write the correct answers on paper."},
		},
		Rules: []string{
			"Mobile phones are strictly prohibited.",
			"Time limit must be followed.",
			"Malpractice leads to disqualification.",
			"Coordinator's decision is final.",
		},
		Coordinators: []Coordinator{
			{Name: "SARMIYA P", Phone: "7806828253"},
			{Name: "GOKUL RAJ M", Phone: "9025280584"},
		},
	},
	{
		ID:         "guess-the-gadget",
		Title:      "GUESS THE GADGET",
		Category:   NonTechnical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "10:00 AM",
		Rounds: []Round{
			{Name: "ROUND 1", Details: "Three simple clues about a gadget commonly used in daily life. Only one guess is allowed."},
			{Name: "ROUND 2", Details: "Three technical clues about a gadget used for work or studies. Teams discuss briefly before answering; no hints given."},
		},
		Rules: []string{
			"One guess per clue.",
			"Think smart. Guess fast. No googling.",
			"Winner identified by max correct gadget identification.",
		},
		Coordinators: []Coordinator{
			{Name: "Rithanya K", Phone: "8883109933"},
			{Name: "Saravana bala S", Phone: "9080046138"},
		},
	},
	{
		ID:         "paper-xpose",
		Title:      "PAPERXPOSE",
		Category:   Technical,
		MaxMembers: 4,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "10:00 AM",
		Rules: []string{
			"Team size: Maximum 3 or 4 members.",
			"Abstract should be submitted in PDF and PPT format (6-7 slides).",
			"Topics should be related to EEE and emerging technologies.",
			"Presentation must be in PPT format (5-7 minutes).",
			"Judging will be based on content, innovation, and presentation skills.",
			"College ID card is mandatory for participation.",
			"The decision of the judges will be final.",
		},
		Coordinators: []Coordinator{
			{Name: "PALANI R", Phone: "8682938618"},
			{Name: "SRINIDHI M", Phone: "9363690793"},
		},
	},
	{
		ID:         "project-display",
		Title:      "PROJECT DISPLAY",
		Category:   Technical,
		MaxMembers: 4,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "10:00 AM",
		Rules: []string{
			"A team may consist of a maximum of 3-4 members.",
			"The abstract must not exceed 400 words.",
			"Each team will be given 5-6 minutes for project presentation.",
			"A valid college identity card is mandatory for all participants.",
			"A hardware prototype or working model must be displayed on the day of the event.",
			"Projects will be evaluated based on innovation, technical content, working demonstration, and clarity of presentation.",
			"Only one registration per team is required.",
		},
		Coordinators: []Coordinator{
			{Name: "Akash S", Phone: "9677132896"},
			{Name: "Priyadharshini M", Phone: "9042698165"},
		},
	},
	{
		ID:         "short-film",
		Title:      "SHORT FILM EVENT",
		Category:   NonTechnical,
		MaxMembers: 5,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "02:00 PM",
		Rules: []string{
			"1 to 5 members per team; students from any department/college can participate.",
			"Film should be 3 to 8 minutes only.",
			"Open theme; any language is allowed with English subtitles if needed.",
			"Submit in MP4 format, minimum HD quality. Bring the film on a pen drive on event day.",
			"Film must be original work; copied content leads to disqualification.",
			"Use copyright-free music or give proper credits.",
		},
		Coordinators: []Coordinator{
			{Name: "Organizing Team", Phone: "8682938618"},
		},
	},
	{
		ID:         "mystery-box",
		Title:      "MYSTERY BOX",
		Category:   NonTechnical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "11:30 AM",
		Rounds: []Round{
			{Name: "ROUND 1, 2, & 3", Details: "Three rounds, each with its own set of rules and increasing difficulty."},
		},
		Rules: []string{
			"No mobile phones allowed.",
			"No hints from audience.",
			"Task must be completed within time.",
			"Misconduct leads to disqualification.",
			"Participants must follow organizer instructions.",
		},
		Coordinators: []Coordinator{
			{Name: "Saru Nithish R", Phone: "7339250785"},
			{Name: "Sariga S", Phone: "8015321426"},
		},
	},
	{
		ID:         "quicktalk",
		Title:      "QUICKTALK",
		Category:   NonTechnical,
		MaxMembers: 1,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "TBD",
		Rounds: []Round{
			{Name: "ROUND 1, 2, & 3", Details: "Three rounds with elimination in each. Round 3 tests continuous speaking ability."},
		},
		Rules: []string{
			"This is an individual participation event.",
			"Participants must respond within the given time limit.",
			"No pause, repetition, or incorrect response is allowed.",
			"Participants must speak clearly and confidently in English.",
			"The judges' decision will be final and binding.",
		},
		Coordinators: []Coordinator{
			{Name: "Bharath PS", Phone: "9095343275"},
			{Name: "Pooja KM", Phone: "9751708191"},
		},
	},
	{
		ID:         "prompt-writing",
		Title:      "PROMPT WRITING SKILLS",
		Category:   NonTechnical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "TBD",
		Rounds: []Round{
			{Name: "MULTI-ROUND CHALLENGE", Details: "Multiple rounds of prompt-writing challenges; teams write prompts for given problem statements."},
		},
		Rules: []string{
			"Participation is team-based, with 2 members per team.",
			"Prompts should be clear, precise, and well-structured.",
			"Teams may discuss among themselves, but external assistance is not allowed.",
			"Use of mobile phones or AI tools is not allowed unless permitted by the coordinators.",
			"Each round will have a fixed time limit, which must be strictly followed.",
			"Judges will evaluate based on clarity, creativity, structure, and effectiveness.",
		},
		Coordinators: []Coordinator{
			{Name: "Sriram P", Phone: "8778743292"},
			{Name: "Priyadarshini T", Phone: "9360194116"},
		},
	},
	{
		ID:         "analog-edge",
		Title:      "ANALOG EDGE",
		Category:   Technical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "TBD",
		Rounds: []Round{
			{Name: "ROUND 1: ANALOG BASICS & FAULT HUNT", Details: "15 questions on fault identification and basic analog electronics. Pen and paper, 45 minutes."},
			{Name: "ROUND 2: CODE-TO-CIRCUIT INTERPRETATION", Details: "5 questions: analyze code, interpret MATLAB/waveforms, identify circuit behavior. Laptop viewing only, 50 minutes."},
		},
		Rules: []string{
			"Team size: Maximum 2 members per team.",
			"Laptops are allowed only for viewing provided code/waveforms.",
			"Mobile phones are strictly prohibited.",
			"Internet access is not allowed.",
			"All questions will be in English only.",
			"College ID card is mandatory.",
		},
		Coordinators: []Coordinator{
			{Name: "Garunyaa S", Phone: "9025987775"},
			{Name: "Arun N T", Phone: "9842139399"},
		},
	},
	{
		ID:         "reverse-coding",
		Title:      "REVERSE CODING",
		Category:   Technical,
		MaxMembers: 2,
		Fee:        250,
		Prize:      "Certificate",
		Timing:     "TBD",
		Rounds: []Round{
			{Name: "Round 1: Elimination", Details: "Basic programs and fundamental logic; the program must generate the exact given output."},
			{Name: "Round 2: Final", Details: "Complex output-based problems using nested loops, arrays, strings, and logic challenges."},
		},
		Rules: []string{
			"Each team must have 2 members only.",
			"Participants must bring their own laptop.",
			"College ID card is mandatory for all participants.",
			"Any programming language can be used (C, C++, Java, Python, etc.).",
			"The program must produce the exact given output.",
			"Solutions must be submitted within the given time limit.",
			"The judges' decision will be final.",
		},
		Coordinators: []Coordinator{
			{Name: "Abinaya.B", Phone: "9025956351"},
			{Name: "Thilagesh.S", Phone: "8300131258"},
		},
	},
}
