package crossing

// shippedDescriptors are the built-in levels in play order.
// The descriptor strings are kept byte-exact; level packs use the same format.
var shippedDescriptors = []struct {
	id, name, descriptor string
}{
	{"first-steps", "First Steps", "5:3:1:GGGGGSSSSSGGGGG:nnnnnnnnnnnnnnn"},
	{"puddles", "Puddles", "5:5:2,3:GGGGGWSWSWSSSSSSSSSSGGGGG:nnnnnnnnnnnnnnnngnnnnnnnn"},
	{"river", "River", "6:6:1,4:GGGGGGSSSSSSWWWWWWWWWWWWSSSSSSGGGGGG:nnnnnnnnnnnnnnnnnnnnnnnnnnnnrnnnnnnn"},
	{"stepping-stones", "Stepping Stones", "5:6:2,3,4:GGGGGWWSWWSSSSSSSSSSSSSSSGGGGG:nnnnnnnnnnnnnnnnbnnnnnnnnnnnnn"},
	{"gems", "Gems", "5:6:1,3,4:GGGGGSSSSSSSWSSSSSSSSSSSSGGGGG:nnnnnnnnnnngnbnnnnnnnnnnnnnnnn"},
	{"highway", "Highway", "7:7:1,2,3,5:GGGGGGGSSSSSSSSSSSSSSSSSSSSSWWWSWWWSSSSSSSGGGGGGG:nnnnnnnnnnnnnnnnnnnnnnnnnnnnsnnnnnnnnrnnnnnnnnnnn"},
	{"checkpoint", "Checkpoint", "5:5:1,3:GGGGGSSSSSSWSWSSSSSSGGGGG:nnnnnnnnnnnnnnnnnnnnnnnnn"},
	{"marsh", "Marsh", "6:7:1,5:GGGGGGSSSSSSWSWSWSSWSWSWWSWSWSSSSSSSGGGGGG:nnnnnnnnnnnnnnnnnnnnnnnnnrnnnnnnnnnnnnnnnn"},
	{"islands", "Islands", "5:5:1,2,3:WGWGWSSSSSSSSSSSSSSSGGGGG:nnnnnnnnnnnnnnnnnnnnnnnnn"},
	{"final-crossing", "Final Crossing", "8:7:1,3,5:GGWWWWGGSSSSSSSSWWSSWWSSSSSSSSSSSSWWSSWWSSSSSSSSGGGGGGGG:nnnnnnnnnnnnnnnnnnnnnnngnnnnsnnnbnnnnnnnnnnnnnnnnnnnnnnn"},
}

// ShippedLevels returns the built-in campaign.
func ShippedLevels() []Level {
	levels := make([]Level, len(shippedDescriptors))
	for i, d := range shippedDescriptors {
		levels[i] = MustParseLevel(d.id, d.name, d.descriptor)
	}
	return levels
}

// Profile is a selectable player character.
type Profile struct {
	Name   string
	Sprite string
}

// DefaultProfiles returns the character roster offered by the selector.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "boy", Sprite: "char-boy"},
		{Name: "cat-girl", Sprite: "char-cat-girl"},
		{Name: "horn-girl", Sprite: "char-horn-girl"},
		{Name: "pink-girl", Sprite: "char-pink-girl"},
		{Name: "princess-girl", Sprite: "char-princess-girl"},
	}
}
