package lexicon

// afinnWeights is a fixed valence lexicon in the AFINN style: each token
// carries an integer weight in [-5, 5]. The scorer sums weights over the
// tokens of a message; the sign of the sum buckets the message as positive,
// negative, or neutral.
var afinnWeights = map[string]int{
	"abandon": -2, "abuse": -3, "abusive": -3, "accept": 1, "accepted": 1,
	"accident": -2, "accomplish": 2, "accomplished": 2, "ache": -2,
	"admire": 3, "adorable": 3, "adore": 3, "afraid": -2, "aggressive": -2,
	"agree": 1, "alarm": -2, "alone": -2, "amaze": 2, "amazed": 2,
	"amazing": 4, "anger": -3, "angry": -3, "annoy": -2, "annoyed": -2,
	"annoying": -2, "anxious": -2, "apology": -1, "appreciate": 2,
	"appreciated": 2, "ashamed": -2, "attack": -1, "avoid": -1, "award": 3,
	"awesome": 4, "awful": -3, "awkward": -2, "bad": -3, "ban": -2,
	"banned": -2, "beautiful": 3, "best": 3, "better": 2, "bitter": -2,
	"blame": -2, "bless": 2, "blessed": 3, "boring": -3, "brave": 2,
	"breathtaking": 5, "bright": 1, "brilliant": 4, "broke": -1,
	"broken": -1, "bug": -2, "calm": 2, "cancel": -1, "cancelled": -1,
	"care": 2, "careless": -2, "celebrate": 3, "chaos": -2, "charming": 3,
	"cheat": -3, "cheated": -3, "cheer": 2, "cheerful": 2, "clean": 2,
	"clever": 2, "comfort": 2, "comfortable": 2, "complain": -2,
	"complaint": -2, "confident": 2, "confused": -2, "congrats": 2,
	"congratulations": 2, "cool": 1, "crap": -3, "crash": -2, "crazy": -2,
	"cried": -2, "cruel": -3, "cry": -1, "crying": -2, "cute": 2,
	"damage": -3, "damn": -4, "danger": -2, "dead": -3, "death": -2,
	"defeat": -2, "delay": -1, "delayed": -1, "delight": 3, "delighted": 3,
	"depressed": -3, "despair": -3, "destroy": -3, "destroyed": -3,
	"die": -3, "died": -3, "difficult": -1, "dirty": -2, "disappointed": -2,
	"disappointing": -2, "disaster": -2, "dislike": -2, "distrust": -3,
	"doubt": -1, "dream": 1, "dull": -2, "dumb": -3, "eager": 2, "easy": 1,
	"ecstatic": 4, "embarrassed": -2, "empty": -1, "encourage": 2,
	"enjoy": 2, "enjoyed": 2, "enthusiastic": 3, "error": -2, "evil": -3,
	"excellent": 3, "excited": 3, "exciting": 3, "exhausted": -2,
	"fabulous": 4, "fail": -2, "failed": -2, "failure": -2, "fair": 2,
	"fake": -3, "fantastic": 4, "fault": -2, "favorite": 2, "fear": -2,
	"fight": -1, "fine": 2, "fired": -2, "flawless": 4, "forbid": -2,
	"forget": -1, "forgive": 1, "fraud": -4, "free": 1, "fresh": 1,
	"friendly": 2, "frustrated": -2, "frustrating": -2, "fun": 4,
	"funny": 4, "generous": 2, "gift": 2, "glad": 3, "gloomy": -2,
	"good": 3, "gorgeous": 3, "grateful": 3, "great": 3, "greed": -3,
	"grief": -2, "guilt": -3, "guilty": -3, "happy": 3, "harm": -2,
	"hate": -3, "hated": -3, "hates": -3, "haunt": -1, "heaven": 2,
	"hell": -4, "help": 2, "helpful": 2, "helpless": -2, "hero": 2,
	"hilarious": 2, "honest": 2, "hope": 2, "hopeful": 2, "hopeless": -2,
	"horrible": -3, "hug": 2, "hurt": -2, "hurts": -2, "ignore": -1,
	"ignored": -2, "ill": -2, "impressed": 3, "impressive": 3,
	"incredible": 4, "innovative": 1, "insane": -2, "inspire": 2,
	"inspired": 2, "interesting": 2, "jealous": -2, "joke": 2, "jolly": 2,
	"joy": 3, "kill": -3, "killed": -3, "kind": 2, "kiss": 2, "laugh": 1,
	"laughing": 2, "lazy": -1, "liar": -3, "lie": -1, "lied": -2,
	"like": 2, "liked": 2, "likes": 2, "lonely": -2, "lose": -3,
	"loser": -3, "losing": -3, "loss": -3, "lost": -3, "love": 3,
	"loved": 3, "lovely": 3, "loves": 3, "luck": 3, "lucky": 3, "mad": -3,
	"marvelous": 3, "mean": -2, "mess": -2, "miracle": 4, "miss": -1,
	"missed": -2, "missing": -2, "mistake": -2, "motivated": 2,
	"murder": -2, "nasty": -3, "nervous": -2, "nice": 3, "noisy": -1,
	"nonsense": -2, "outstanding": 5, "pain": -2, "painful": -2,
	"panic": -3, "peace": 2, "peaceful": 2, "perfect": 3, "please": 1,
	"pleased": 3, "pleasure": 3, "poor": -2, "positive": 2, "powerful": 2,
	"pretty": 1, "problem": -2, "problems": -2, "proud": 2, "punish": -2,
	"quit": -1, "rage": -2, "reject": -1, "rejected": -2, "relax": 2,
	"relaxed": 2, "relieved": 2, "rescue": 2, "respect": 2, "rich": 2,
	"rotten": -3, "rude": -2, "sad": -2, "sadness": -2, "safe": 1,
	"satisfied": 2, "save": 2, "scam": -2, "scandal": -3, "scare": -2,
	"scared": -2, "scary": -2, "secure": 2, "sexy": 3, "shame": -2,
	"share": 1, "shock": -2, "shocked": -2, "shy": -1, "sick": -2,
	"silly": -1, "sincere": 2, "smart": 1, "smile": 2, "smiling": 2,
	"sob": -4, "solution": 1, "solutions": 1, "solve": 1, "solved": 1,
	"sorry": -1, "spam": -2, "splendid": 3, "steal": -2, "stolen": -2,
	"stop": -1, "strange": -1, "stress": -1, "stressed": -2, "strong": 2,
	"struggle": -2, "stupid": -2, "substantial": 1, "succeed": 3,
	"success": 2, "successful": 3, "suck": -3, "sucks": -3, "suffer": -2,
	"suffering": -2, "super": 3, "superb": 5, "support": 2, "surprised": 1,
	"sweet": 2, "terrible": -3, "terrific": 4, "terrified": -3,
	"terror": -3, "thank": 2, "thanks": 2, "threat": -2, "thrilled": 5,
	"tired": -2, "tough": -2, "toxic": -3, "tragedy": -2, "tragic": -2,
	"trouble": -2, "true": 2, "trust": 1, "trusted": 2, "ugly": -3,
	"unbelievable": -1, "uncomfortable": -2, "unhappy": -2, "upset": -2,
	"useful": 2, "useless": -2, "victory": 3, "violence": -3, "warm": 1,
	"weak": -2, "wealthy": 2, "weird": -2, "welcome": 2, "win": 4,
	"winner": 4, "winning": 4, "wish": 1, "won": 3, "wonderful": 4,
	"worn": -1, "worried": -3, "worry": -3, "worse": -3, "worst": -3,
	"worthless": -2, "worthy": 2, "wow": 4, "wrong": -2, "yay": 3,
	"yummy": 3,
}
