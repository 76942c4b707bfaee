// Package copywriter generates flyer copy (descriptions, taglines, palettes)
// from event text using static keyword packs. It is fully local and
// deterministic for a fixed seed, and is the guaranteed fallback when the
// external copy supplier fails.
package copywriter

// pack is one thematic copy recipe. Packs are matched in order against the
// event text; the first pack with any keyword hit wins, and the generic pack
// closes the table so matching never fails.
type pack struct {
	keywords    []string
	leads       [3]string
	moods       [4]string
	actions     [4]string
	palettes    [3][3]string
	description string
}

var packs = []pack{
	{
		keywords: []string{"winter", "snow", "frost", "wonderland"},
		leads:    [3]string{"A Frosted", "One Shimmering", "A Snowlit"},
		moods:    [4]string{"Evening", "Wonderland", "Gathering", "Celebration"},
		actions:  [4]string{"Awaits You", "Begins Tonight", "Sparkles Here", "Warms the Season"},
		palettes: [3][3]string{
			{"#0F2547", "#25477A", "#9CC3F0"},
			{"#12355B", "#4C6EA8", "#E8F1FB"},
			{"#1A2C4E", "#3C5E8F", "#BFD8F2"},
		},
		description: "An elegant evening of lights, laughter, and winter magic.",
	},
	{
		keywords: []string{"eid", "ramadan", "iftar", "suhoor", "chand"},
		leads:    [3]string{"A Blessed", "One Radiant", "A Joyful"},
		moods:    [4]string{"Evening", "Gathering", "Feast", "Celebration"},
		actions:  [4]string{"Brings Us Together", "Awaits You", "Fills the Night", "Shines Bright"},
		palettes: [3][3]string{
			{"#10304A", "#1C4E68", "#E3C36F"},
			{"#123653", "#2A6480", "#8FD0C4"},
			{"#0E2A40", "#1E4A63", "#F6F2E7"},
		},
		description: "Gather for an evening of gratitude, good food, and great company.",
	},
	{
		keywords: []string{"desi", "bollywood", "mehndi", "shaadi", "sari"},
		leads:    [3]string{"A Dazzling", "One Vibrant", "A Colorful"},
		moods:    [4]string{"Mehfil", "Night", "Celebration", "Dhamaka"},
		actions:  [4]string{"Awaits You", "Lights Up the Floor", "Brings the Beat", "Starts at Sundown"},
		palettes: [3][3]string{
			{"#3B0D2E", "#6B1B3F", "#F2B134"},
			{"#4A102F", "#7A2048", "#2BB5A0"},
			{"#32112B", "#5E1C44", "#FFD166"},
		},
		description: "Bright colors, dhol beats, and a night made for dancing.",
	},
	{
		keywords: []string{"garden", "spring", "tea", "bloom", "floral", "picnic"},
		leads:    [3]string{"A Blooming", "One Sunlit", "A Garden-Fresh"},
		moods:    [4]string{"Afternoon", "Gathering", "Party", "Picnic"},
		actions:  [4]string{"Awaits You", "Blossoms Soon", "Is Served", "Begins at Noon"},
		palettes: [3][3]string{
			{"#F2F7EC", "#CBE3C4", "#5B8C51"},
			{"#EDF5E4", "#B8D9AE", "#D77FA1"},
			{"#F7FAF0", "#D4E8CC", "#7BA66F"},
		},
		description: "Fresh air, fresh blooms, and an afternoon worth savoring.",
	},
	{
		keywords: []string{"tropical", "luau", "beach", "island", "summer"},
		leads:    [3]string{"A Sun-Drenched", "One Breezy", "An Island"},
		moods:    [4]string{"Luau", "Escape", "Party", "Sunset"},
		actions:  [4]string{"Awaits You", "Starts at Dusk", "Calls Your Name", "Heats Up Tonight"},
		palettes: [3][3]string{
			{"#FF9A5A", "#FF5E62", "#FFD166"},
			{"#FF8C42", "#E8505B", "#06D6A0"},
			{"#FFAA5C", "#F25C54", "#FFE8C2"},
		},
		description: "Island vibes, golden light, and good company all evening.",
	},
	{
		keywords: []string{"celestial", "starry", "galaxy", "moon", "cosmic"},
		leads:    [3]string{"A Starlit", "One Cosmic", "A Moonlit"},
		moods:    [4]string{"Evening", "Voyage", "Night", "Gathering"},
		actions:  [4]string{"Awaits You", "Begins at Dark", "Drifts Skyward", "Glows Tonight"},
		palettes: [3][3]string{
			{"#0B1026", "#2C2A4A", "#B8A9F5"},
			{"#101432", "#353260", "#F5D98F"},
			{"#0D1230", "#2E2C52", "#D6CCFF"},
		},
		description: "An evening written in the stars, shared with friends.",
	},
	{
		keywords: []string{"neon", "glow", "disco", "retro", "arcade", "90s"},
		leads:    [3]string{"An Electric", "One Glowing", "A Neon"},
		moods:    [4]string{"Night", "Party", "Throwback", "Dancefloor"},
		actions:  [4]string{"Turns On at Eight", "Glows All Night", "Awaits You", "Never Stops"},
		palettes: [3][3]string{
			{"#14000F", "#30004A", "#00F5D4"},
			{"#1A0514", "#3E0A5C", "#F15BB5"},
			{"#0F0212", "#2B0640", "#FEE440"},
		},
		description: "Lights up, volume louder, and a dancefloor that glows.",
	},
	{
		keywords: []string{"royal", "regal", "palace", "crown", "velvet"},
		leads:    [3]string{"A Regal", "One Majestic", "A Gilded"},
		moods:    [4]string{"Evening", "Affair", "Court", "Celebration"},
		actions:  [4]string{"Awaits You", "Receives You Tonight", "Opens Its Doors", "Honors Your Presence"},
		palettes: [3][3]string{
			{"#1E1240", "#3B2470", "#D9B65C"},
			{"#241548", "#45307E", "#9D7FE0"},
			{"#1A0F38", "#332060", "#E8CC7A"},
		},
		description: "Velvet, gold, and an evening fit for royalty.",
	},
	{
		keywords: []string{"autumn", "fall", "harvest", "thanksgiving"},
		leads:    [3]string{"A Golden", "One Cozy", "A Harvest"},
		moods:    [4]string{"Evening", "Feast", "Gathering", "Bonfire"},
		actions:  [4]string{"Awaits You", "Warms the Night", "Is Set", "Gathers Us In"},
		palettes: [3][3]string{
			{"#4A2511", "#7A3E1D", "#E8963C"},
			{"#53290F", "#8A4A22", "#C24E2C"},
			{"#3E2210", "#6E3A1C", "#F2B05E"},
		},
		description: "Crisp air, warm plates, and the colors of the season.",
	},
	{
		keywords: []string{"halloween", "spooky", "haunted", "costume", "pumpkin"},
		leads:    [3]string{"A Haunted", "One Wicked", "A Spine-Tingling"},
		moods:    [4]string{"Night", "Gathering", "Masquerade", "Party"},
		actions:  [4]string{"Dares You to Come", "Creeps In at Dark", "Awaits You", "Rises Tonight"},
		palettes: [3][3]string{
			{"#120B1C", "#2E1245", "#F08C1B"},
			{"#170E24", "#3A1A52", "#7FBF4D"},
			{"#0E0818", "#28103C", "#E8742C"},
		},
		description: "Costumes required, courage optional, fun guaranteed.",
	},
	{
		keywords: []string{"gala", "black tie", "formal", "elegant", "masquerade"},
		leads:    [3]string{"An Elegant", "One Golden", "A Glittering"},
		moods:    [4]string{"Evening", "Gala", "Affair", "Soiree"},
		actions:  [4]string{"Awaits You", "Begins at Seven", "Sparkles Tonight", "Calls for Champagne"},
		palettes: [3][3]string{
			{"#0C0C0C", "#23201A", "#D4AF37"},
			{"#141210", "#2E2920", "#E8CC7A"},
			{"#0A0A0C", "#1F1D24", "#C9AE6B"},
		},
		description: "A polished evening of music, mingling, and celebration.",
	},
}

// genericPack applies when no keyword pack matches; it must produce usable
// copy for any non-empty theme.
var genericPack = pack{
	leads:   [3]string{"A Wonderful", "One Special", "A Memorable"},
	moods:   [4]string{"Evening", "Gathering", "Celebration", "Get-Together"},
	actions: [4]string{"Awaits You", "Brings Us Together", "Starts Soon", "Is Almost Here"},
	palettes: [3][3]string{
		{"#1C1B29", "#34324E", "#C9AE6B"},
		{"#20242E", "#3A4254", "#8E86B8"},
		{"#23222C", "#3E3C50", "#D8C48A"},
	},
	description: "Good friends, good food, and a night to remember.",
}
