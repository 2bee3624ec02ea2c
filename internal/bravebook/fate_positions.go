package bravebook

// fatePositions — Fate row ID → map link of the FATE spawn point.
var fatePositions = map[uint32]MapLink{
	317: {139, 19, 26.8, 18.2}, // Surprise, Upper La Noscea
	424: {146, 23, 21.0, 16.0}, // Heroes of the 2nd, Southern Thanalan
	430: {146, 23, 24.0, 26.0}, // Return to Cinder, Southern Thanalan
	475: {155, 53, 34.0, 13.0}, // Bellyful, Coerthas Central Highlands
	480: {155, 53, 8.0, 11.0},  // Giant Seps, Coerthas Central Highlands
	486: {155, 53, 10.0, 28.0}, // Tower of Power, Coerthas Central Highlands
	493: {155, 53, 5.0, 22.0},  // The Taste of Fear, Coerthas Central Highlands
	499: {155, 53, 34.0, 20.0}, // The Four Winds, Coerthas Central Highlands
	516: {156, 25, 15.7, 14.3}, // Black and Nburu, Mor Dhona
	517: {156, 25, 13.0, 12.0}, // Good to Be Bud, Mor Dhona
	521: {156, 25, 31.0, 5.0},  // Another Notch on the Torch, Mor Dhona
	540: {145, 22, 26.0, 24.0}, // Quartz Coupling, Eastern Thanalan
	543: {145, 22, 30.0, 25.0}, // The Big Bagoly Theory, Eastern Thanalan
	552: {146, 23, 18.0, 20.0}, // Taken, Southern Thanalan
	569: {138, 18, 21.0, 19.0}, // Breaching North Tidegate, Western La Noscea
	571: {138, 18, 18.0, 22.0}, // Breaching South Tidegate, Western La Noscea
	577: {138, 18, 14.0, 34.0}, // The King's Justice, Western La Noscea
	587: {180, 30, 25.0, 16.0}, // Schism, Outer La Noscea
	589: {180, 30, 25.0, 17.0}, // Make It Rain, Outer La Noscea
	604: {148, 4, 11.0, 18.0},  // In Spite of It All, Central Shroud
	611: {152, 5, 27.0, 21.0},  // The Enmity of My Enemy, East Shroud
	616: {152, 5, 32.0, 14.0},  // Breaking Dawn, East Shroud
	620: {152, 5, 23.0, 14.0},  // Everything's Better, East Shroud
	628: {153, 6, 32.0, 25.0},  // What Gored Before, South Shroud
	632: {154, 7, 21.0, 19.0},  // Rude Awakening, North Shroud
	633: {154, 7, 19.0, 20.0},  // Air Supply, North Shroud
	642: {147, 24, 21.0, 29.0}, // The Ceruleum Road, Northern Thanalan
}
