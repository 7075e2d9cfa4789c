package lexicon

// defaultStopWords are excluded from word-frequency ranking. The list covers
// common English function words plus chat filler that would otherwise
// dominate every top-words ranking.
var defaultStopWords = []string{
	"a", "about", "after", "again", "all", "also", "am", "an", "and", "any",
	"are", "arent", "as", "at", "be", "because", "been", "before", "being",
	"but", "by", "can", "cant", "could", "couldnt", "did", "didnt", "do",
	"does", "doesnt", "doing", "dont", "down", "for", "from", "get", "go",
	"going", "gonna", "got", "had", "has", "have", "havent", "he", "her",
	"here", "hes", "him", "his", "how", "i", "if", "im", "in", "into", "is",
	"isnt", "it", "its", "ive", "just", "know", "like", "lol", "me", "more",
	"most", "my", "na", "no", "not", "now", "of", "off", "oh", "ok", "okay",
	"on", "one", "only", "or", "other", "our", "out", "over", "really",
	"said", "same", "she", "shes", "so", "some", "still", "such", "than",
	"that", "thats", "the", "their", "them", "then", "there", "theres",
	"these", "they", "theyre", "this", "those", "through", "to", "too", "u",
	"up", "ur", "us", "was", "wasnt", "we", "well", "were", "what", "when",
	"where", "which", "while", "who", "why", "will", "with", "wont", "would",
	"wouldnt", "ya", "yeah", "yes", "you", "your", "youre",
}
