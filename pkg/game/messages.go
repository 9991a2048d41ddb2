package game

// Texts shown to the players. The templates taking an argument expect the
// symbol of a side.
const (
	PromptLine   = "Line: "
	PromptColumn = "Column: "

	Turn       = "%s to play ..."
	Win        = "Congratulations player %s, you won."
	NoWinner   = "Sorry, nobody won."
	TurnPassed = "Bad position. Player %s passes."
	CannotPlay = "Player %s passes as they cannot play."
	BadEntry   = "Bad entry. Try again."
)
