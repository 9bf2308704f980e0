package main

// wordBank is the label corpus boards are drawn from. Every entry is
// uppercase, letters-only, and unique.
var wordBank = []string{
	"AFRICA", "AGENT", "AIR", "ALIEN", "ALPS", "AMAZON", "AMBER", "AMBULANCE",
	"AMERICA", "ANCHOR", "ANGEL", "ANTARCTICA", "ANTHEM", "APPLE", "APRON", "ARCADE",
	"ARCHER", "ARENA", "ARM", "ARROW", "ATLANTIS", "ATLAS", "AUSTRALIA", "AVALANCHE",
	"AZTEC", "BACK", "BADGE", "BALL", "BAMBOO", "BAND", "BANK", "BANNER",
	"BAR", "BARK", "BARREL", "BASIN", "BAT", "BATTERY", "BEACH", "BEACON",
	"BEAR", "BEAT", "BED", "BEETLE", "BEIJING", "BELL", "BELT", "BERLIN",
	"BERMUDA", "BERRY", "BILL", "BISHOP", "BLIZZARD", "BLOSSOM", "BOARD", "BOLT",
	"BOMB", "BOND", "BOOM", "BOOT", "BOTTLE", "BOULDER", "BOW", "BOX",
	"BREEZE", "BRICKS", "BRIDGE", "BRUSH", "BUCK", "BUFFALO", "BUG", "BUGLE",
	"BUTTON", "CABIN", "CACTUS", "CALF", "CANADA", "CAP", "CAPITAL", "CAR",
	"CARAVAN", "CARD", "CARGO", "CARROT", "CASINO", "CAST", "CAT", "CATHEDRAL",
	"CAVERN", "CELL", "CENTAUR", "CENTER", "CHAIR", "CHALK", "CHANGE", "CHAPEL",
	"CHARGE", "CHARIOT", "CHECK", "CHEST", "CHICK", "CHINA", "CHISEL", "CHOCOLATE",
	"CHURCH", "CIDER", "CIRCLE", "CIRCUS", "CITADEL", "CLIFF", "CLOAK", "CLOVER",
	"CLUB", "COBRA", "CODE", "COLD", "COMET", "COMIC", "COMPASS", "COMPOUND",
	"CONCERT", "CONDUCTOR", "CONTRACT", "COOK", "COPPER", "CORAL", "COTTON", "COURT",
	"COVER", "CRADLE", "CRANE", "CRASH", "CRATER", "CRICKET", "CROSS", "CROWN",
	"CRYSTAL", "CURRENT", "CYCLE", "CZECH", "DAGGER", "DANCE", "DATE", "DAY",
	"DEATH", "DECK", "DEGREE", "DELTA", "DESERT", "DIAMOND", "DICE", "DINOSAUR",
	"DISEASE", "DOCTOR", "DOG", "DOME", "DRAFT", "DRAGON", "DRESS", "DRILL",
	"DROP", "DRUM", "DUCK", "DUNE", "DUSK", "DWARF", "EAGLE", "EGYPT",
	"EMBASSY", "EMBER", "ENGINE", "ENGLAND", "EUROPE", "EYE", "FACE", "FAIR",
	"FALCON", "FALL", "FAN", "FEATHER", "FENCE", "FERRY", "FIELD", "FIGHTER",
	"FIGURE", "FILE", "FILM", "FIRE", "FISH", "FJORD", "FLAG", "FLAME",
	"FLUTE", "FLY", "FOOT", "FORCE", "FOREST", "FORK", "FOSSIL", "FOUNTAIN",
	"FRANCE", "FROST", "GALAXY", "GAME", "GARDEN", "GAS", "GAZELLE", "GENIUS",
	"GERMANY", "GEYSER", "GHOST", "GIANT", "GLACIER", "GLASS", "GLOVE", "GOBLET",
	"GOLD", "GRACE", "GRANITE", "GRASS", "GREECE", "GREEN", "GROUND", "GROVE",
	"HAM", "HAMMER", "HAND", "HARBOR", "HARVEST", "HAWK", "HAZEL", "HEAD",
	"HEART", "HELICOPTER", "HERON", "HIMALAYAS", "HIVE", "HOLE", "HOLLYWOOD", "HONEY",
	"HOOD", "HOOK", "HORN", "HORSE", "HORSESHOE", "HOSPITAL", "HOTEL", "HURRICANE",
	"ICE", "INDIA", "IRON", "ISLAND", "IVORY", "JACK", "JAM", "JET",
	"JUNGLE", "JUPITER", "KANGAROO", "KAYAK", "KETCHUP", "KEY", "KID", "KING",
	"KIWI", "KNIFE", "KNIGHT", "LAB", "LAGOON", "LANTERN", "LAP", "LASER",
	"LAVA", "LAWYER", "LEAD", "LEMON", "LEPRECHAUN", "LIFE", "LIGHT", "LIGHTHOUSE",
	"LIMOUSINE", "LINE", "LINK", "LION", "LITTER", "LOCH", "LOCKET", "LOG",
	"LONDON", "LOTUS", "LUCK", "MACHETE", "MAIL", "MAMMOTH", "MANGO", "MANSION",
	"MAPLE", "MARBLE", "MARCH", "MARSH", "MASS", "MATCH", "MEADOW", "MERCURY",
	"METEOR", "MEXICO", "MICROSCOPE", "MILL", "MILLIONAIRE", "MINE", "MINT", "MIRROR",
	"MISSILE", "MODEL", "MOLE", "MONASTERY", "MONSOON", "MOON", "MOSAIC", "MOSCOW",
	"MOTH", "MOUNT", "MOUSE", "MOUTH", "MUG", "NAIL", "NECTAR", "NEEDLE",
	"NET", "NEWYORK", "NIGHT", "NINJA", "NOTE", "NOVEL", "NURSE", "NUT",
	"OASIS", "OBELISK", "OCTOPUS", "OIL", "OLIVE", "OLYMPUS", "OPERA", "ORANGE",
	"ORCHARD", "ORGAN", "OWL", "PADDLE", "PAGODA", "PALM", "PAN", "PANTS",
	"PAPER", "PARACHUTE", "PARK", "PARROT", "PART", "PASS", "PASTE", "PEAK",
	"PEARL", "PEBBLE", "PENDULUM", "PENGUIN", "PHOENIX", "PIANO", "PIE", "PILLAR",
	"PILOT", "PIN", "PIPE", "PIRATE", "PISTOL", "PIT", "PITCH", "PLANE",
	"PLASTIC", "PLATE", "PLATYPUS", "PLAY", "PLOT", "PLUME", "POINT", "POISON",
	"POLE", "POLICE", "POND", "POOL", "PORT", "POST", "POUND", "PRAIRIE",
	"PRESS", "PRINCESS", "PRISM", "PUMPKIN", "PUPIL", "PYRAMID", "QUARRY", "QUARTZ",
	"QUEEN", "QUIVER", "RABBIT", "RACKET", "RAFT", "RAPIDS", "RAVEN", "RAY",
	"REEF", "REVOLUTION", "RIDGE", "RING", "RIVER", "ROBIN", "ROBOT", "ROCK",
	"ROME", "ROOT", "ROSE", "ROULETTE", "ROUND", "ROW", "RULER", "SADDLE",
	"SAPPHIRE", "SATELLITE", "SATURN", "SAVANNA", "SCALE", "SCHOOL", "SCIENTIST", "SCORPION",
	"SCREEN", "SCROLL", "SCUBA", "SEAL", "SERVER", "SHADOW", "SHAKESPEARE", "SHARK",
	"SHELL", "SHIP", "SHOE", "SHOP", "SHOT", "SHRINE", "SILK", "SINK",
	"SKYSCRAPER", "SLEEP", "SLIP", "SLUG", "SMUGGLER", "SNOW", "SNOWMAN", "SOCK",
	"SOLDIER", "SOUL", "SOUND", "SPACE", "SPARROW", "SPELL", "SPHINX", "SPIDER",
	"SPIKE", "SPINE", "SPOT", "SPRING", "SPY", "SQUARE", "STADIUM", "STAFF",
	"STAR", "STATE", "STICK", "STOCK", "STRAW", "STREAM", "STRIKE", "STRING",
	"SUB", "SUIT", "SUMMIT", "SUNDIAL", "SUPERHERO", "SWAMP", "SWING", "SWITCH",
	"TABLE", "TABLET", "TAG", "TAIL", "TALON", "TAP", "TEACHER", "TELESCOPE",
	"TEMPLE", "THEATER", "THICKET", "THIEF", "THORN", "THUMB", "THUNDER", "TICK",
	"TIDE", "TIE", "TIGER", "TIMBER", "TIME", "TOKYO", "TOOTH", "TORCH",
	"TORNADO", "TOWER", "TRACK", "TRAIL", "TRAIN", "TRELLIS", "TRIANGLE", "TRIP",
	"TRUNK", "TUBE", "TULIP", "TUNDRA", "TURKEY", "UNDERTAKER", "UNICORN", "VACUUM",
	"VALLEY", "VAN", "VET", "VINE", "VOLCANO", "WAKE", "WALL", "WALRUS",
	"WAR", "WASHER", "WASHINGTON", "WATCH", "WATER", "WATERFALL", "WAVE", "WEB",
	"WELL", "WHALE", "WHEAT", "WHIP", "WILLOW", "WIND", "WITCH", "WOLF",
	"WORM", "YARD", "ZEBRA",
}

// randomWords draws n distinct labels from the word bank.
func randomWords(n int) []string {
	if n > len(wordBank) {
		n = len(wordBank)
	}

	idx := make([]int, len(wordBank))
	for i := range idx {
		idx[i] = i
	}

	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		j := i + randIntn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		words = append(words, wordBank[idx[i]])
	}

	return words
}
