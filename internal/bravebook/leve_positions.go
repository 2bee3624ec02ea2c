package bravebook

// levePositions — Leve row ID → map link of the levemete issuing the leve.
var levePositions = map[uint32]MapLink{
	643: {147, 24, 22.1, 29.4}, // Subduing the Subprime, Northern Thanalan
	644: {147, 24, 22.1, 29.4}, // Necrologos: Pale Oblation, Northern Thanalan
	645: {147, 24, 22.1, 29.4}, // Don't Forget to Cry, Northern Thanalan
	646: {147, 24, 22.1, 29.4}, // Circling the Ceruleum, Northern Thanalan
	647: {147, 24, 22.1, 29.4}, // Someone's in the Doghouse, Northern Thanalan
	649: {155, 53, 12.5, 16.8}, // Necrologos: Whispers of the Gem, Coerthas Central Highlands
	650: {155, 53, 12.5, 16.8}, // Got a Gut Feeling about This, Coerthas Central Highlands
	652: {155, 53, 12.5, 16.8}, // The Area's a Bit Sketchy, Coerthas Central Highlands
	657: {156, 25, 29.8, 12.5}, // Necrologos: The Liminal Ones, Mor Dhona
	658: {156, 25, 29.8, 12.5}, // Big, Bad Idea, Mor Dhona
	659: {156, 25, 29.8, 12.5}, // Put Your Stomp on It, Mor Dhona
	848: {155, 53, 12.0, 16.7}, // Someone's Got a Big Mouth, Coerthas Central Highlands
	849: {155, 53, 12.0, 16.7}, // An Imp Mobile, Coerthas Central Highlands
	853: {155, 53, 12.0, 16.7}, // Yellow Is the New Black, Coerthas Central Highlands
	855: {155, 53, 12.0, 16.7}, // The Bloodhounds of Coerthas, Coerthas Central Highlands
	859: {155, 53, 12.0, 16.7}, // No Big Whoop, Coerthas Central Highlands
	860: {155, 53, 12.0, 16.7}, // If You Put It That Way, Coerthas Central Highlands
	863: {156, 25, 30.7, 12.0}, // One Big Problem Solved, Mor Dhona
	865: {156, 25, 30.7, 12.0}, // Go Home to Mama, Mor Dhona
	868: {156, 25, 30.7, 12.0}, // The Awry Salvages, Mor Dhona
	870: {156, 25, 30.7, 12.0}, // Get off Our Lake, Mor Dhona
	873: {156, 25, 30.7, 12.0}, // Who Writes History, Mor Dhona
	875: {156, 25, 30.7, 12.0}, // The Museum Is Closed, Mor Dhona
}
