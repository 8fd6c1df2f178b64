// meta/meta.go
package meta

// SearchDepth is how many plies the engine searches below each candidate move.
const SearchDepth = 3

// MaxTurns caps a game so two blocked or shuffling agents cannot loop forever.
const MaxTurns = 300

// NumGames is the default number of games per experiment matchup.
const NumGames = 10
