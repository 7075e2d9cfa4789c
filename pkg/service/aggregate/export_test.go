package aggregate

// LongestStreak exposes the streak scan for white-box tests
var LongestStreak = longestStreak
