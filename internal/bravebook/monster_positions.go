package bravebook

// monsterPositions — MonsterNoteTarget row ID → координаты охотничьих угодий.
// 356-445 are open-world enemies, 446-465 are dungeon bosses (territory of the instance).
var monsterPositions = map[uint32]MapLink{
	356: {152, 5, 28.2, 12.9},   // sylpheed screech, East Shroud
	357: {156, 25, 17.0, 16.0},  // daring harrier, Mor Dhona
	358: {155, 53, 13.7, 27.7},  // giant logger, Coerthas Central Highlands
	359: {138, 18, 17.3, 16.8},  // shoalspine Sahagin, Western La Noscea
	360: {156, 25, 10.6, 14.8},  // 5th Cohort vanguard, Mor Dhona
	361: {180, 30, 24.6, 7.3},   // synthetic doblyn, Outer La Noscea
	362: {140, 20, 12.3, 6.9},   // 4th Cohort hoplomachus, Western Thanalan
	363: {146, 23, 18.2, 24.6},  // Zanr'ak pugilist, Southern Thanalan
	364: {147, 24, 22.1, 26.6},  // basilisk, Northern Thanalan
	365: {137, 17, 29.5, 20.8},  // 2nd Cohort hoplomachus, Eastern La Noscea
	366: {156, 25, 17.0, 16.0},  // raging harrier, Mor Dhona
	367: {155, 53, 14.8, 29.2},  // biast, Coerthas Central Highlands
	368: {138, 18, 17.3, 16.8},  // shoaltooth Sahagin, Western La Noscea
	369: {146, 23, 22.3, 18.7},  // tempered gladiator, Southern Thanalan
	370: {154, 7, 22.0, 20.9},   // dullahan, North Shroud
	371: {152, 5, 24.2, 16.9},   // milkroot cluster, East Shroud
	372: {138, 18, 13.8, 17.2},  // shelfscale Reaver, Western La Noscea
	373: {146, 23, 26.1, 21.1},  // Zahar'ak archer, Southern Thanalan
	374: {180, 30, 27.4, 7.1},   // U'Ghamaro golem, Outer La Noscea
	375: {155, 53, 34.5, 22.1},  // Natalan boldwing, Coerthas Central Highlands
	376: {153, 6, 30.4, 25.1},   // wild hog, South Shroud
	377: {156, 25, 17.0, 16.0},  // hexing harrier, Mor Dhona
	378: {155, 53, 13.7, 27.7},  // giant lugger, Coerthas Central Highlands
	379: {146, 23, 22.3, 18.7},  // tempered orator, Southern Thanalan
	380: {156, 25, 30.0, 14.7},  // gigas bonze, Mor Dhona
	381: {180, 30, 24.6, 7.3},   // U'Ghamaro roundsman, Outer La Noscea
	382: {152, 5, 26.1, 13.2},   // sylph bonnet, East Shroud
	383: {138, 18, 13.8, 17.2},  // shelfclaw Reaver, Western La Noscea
	384: {146, 23, 31.8, 18.8},  // Zahar'ak fortune-teller, Southern Thanalan
	385: {137, 17, 29.5, 20.8},  // 2nd Cohort laquearius, Eastern La Noscea
	386: {138, 18, 17.8, 19.9},  // shelfscale Sahagin, Western La Noscea
	387: {156, 25, 13.1, 10.7},  // mudpuppy, Mor Dhona
	388: {146, 23, 18.1, 21.0},  // Amalj'aa lancer, Southern Thanalan
	389: {156, 25, 25.6, 12.5},  // lake cobra, Mor Dhona
	390: {155, 53, 13.7, 27.7},  // giant reader, Coerthas Central Highlands
	391: {180, 30, 24.6, 7.3},   // U'Ghamaro quarryman, Outer La Noscea
	392: {152, 5, 24.6, 11.2},   // Sylphlands sentinel, East Shroud
	393: {138, 18, 13.8, 17.2},  // sea wasp, Western La Noscea
	394: {147, 24, 16.8, 16.9},  // magitek vanguard, Northern Thanalan
	395: {137, 17, 29.5, 20.8},  // 2nd Cohort eques, Eastern La Noscea
	396: {152, 5, 28.2, 12.9},   // sylpheed sigh, East Shroud
	397: {146, 23, 16.2, 25.0},  // iron tortoise, Southern Thanalan
	398: {156, 25, 10.6, 14.8},  // 5th Cohort hoplomachus, Mor Dhona
	399: {155, 53, 16.2, 31.6},  // snow wolf, Coerthas Central Highlands
	400: {153, 6, 32.6, 23.7},   // ked, South Shroud
	401: {180, 30, 24.6, 7.3},   // U'Ghamaro bedesman, Outer La Noscea
	402: {138, 18, 13.8, 17.2},  // shelfeye Reaver, Western La Noscea
	403: {140, 20, 10.6, 6.0},   // 4th Cohort laquearius, Western Thanalan
	404: {156, 25, 33.1, 16.1},  // gigas bhikkhu, Mor Dhona
	405: {138, 18, 14.3, 14.4},  // Sapsa shelfscale, Western La Noscea
	406: {146, 23, 20.7, 21.3},  // Amalj'aa brigand, Southern Thanalan
	407: {153, 6, 30.4, 25.1},   // lesser kalong, South Shroud
	408: {156, 25, 10.6, 14.8},  // 5th Cohort laquearius, Mor Dhona
	409: {156, 25, 30.0, 14.7},  // gigas sozu, Mor Dhona
	410: {154, 7, 20.0, 20.0},   // Ixali windtalon, North Shroud
	411: {180, 30, 24.6, 7.3},   // U'Ghamaro priest, Outer La Noscea
	412: {140, 20, 11.6, 6.6},   // 4th Cohort secutor, Western Thanalan
	413: {155, 53, 32.9, 20.7},  // Natalan watchwolf, Coerthas Central Highlands
	414: {152, 5, 24.6, 11.2},   // violet screech, East Shroud
	415: {138, 18, 14.3, 14.4},  // Sapsa shelfclaw, Western La Noscea
	416: {152, 5, 28.2, 12.9},   // sylpheed snarl, East Shroud
	417: {146, 23, 20.2, 20.8},  // Amalj'aa thaumaturge, Southern Thanalan
	418: {156, 25, 10.6, 14.8},  // 5th Cohort eques, Mor Dhona
	419: {138, 18, 17.4, 15.9},  // Sapsa elbst, Western La Noscea
	420: {156, 25, 27.0, 8.0},   // hippogryph, Mor Dhona
	421: {138, 18, 20.0, 19.5},  // trenchtooth Sahagin, Western La Noscea
	422: {155, 53, 34.5, 22.1},  // Natalan windtalon, Coerthas Central Highlands
	423: {180, 30, 24.6, 7.3},   // elite roundsman, Outer La Noscea
	424: {147, 24, 24.5, 21.3},  // ahriman, Northern Thanalan
	425: {137, 17, 29.5, 20.8},  // 2nd Cohort secutor, Eastern La Noscea
	426: {156, 25, 30.0, 14.7},  // gigas shramana, Mor Dhona
	427: {156, 25, 10.6, 14.8},  // 5th Cohort signifer, Mor Dhona
	428: {152, 5, 27.5, 18.3},   // dreamtoad, East Shroud
	429: {154, 7, 19.2, 19.8},   // watchwolf, North Shroud
	430: {146, 23, 20.6, 23.6},  // Amalj'aa archer, Southern Thanalan
	431: {140, 20, 12.2, 6.9},   // 4th Cohort signifer, Western Thanalan
	432: {146, 23, 31.8, 18.8},  // Zahar'ak battle drake, Southern Thanalan
	433: {138, 18, 14.3, 14.4},  // Sapsa shelftooth, Western La Noscea
	434: {155, 53, 34.5, 22.1},  // Natalan fogcaller, Coerthas Central Highlands
	435: {180, 30, 24.6, 7.3},   // elite priest, Outer La Noscea
	436: {146, 23, 19.4, 21.0},  // Amalj'aa scavenger, Southern Thanalan
	437: {156, 25, 10.6, 14.8},  // 5th Cohort secutor, Mor Dhona
	438: {154, 7, 19.2, 19.8},   // Ixali boldwing, North Shroud
	439: {146, 23, 26.0, 21.2},  // Zahar'ak pugilist, Southern Thanalan
	440: {138, 18, 13.9, 15.5},  // axolotl, Western La Noscea
	441: {156, 25, 31.0, 5.6},   // hapalit, Mor Dhona
	442: {180, 30, 24.6, 7.3},   // elite quarryman, Outer La Noscea
	443: {155, 53, 34.5, 22.1},  // Natalan swiftbeak, Coerthas Central Highlands
	444: {152, 5, 24.5, 11.1},   // violet sigh, East Shroud
	445: {137, 17, 29.5, 20.8},  // 2nd Cohort signifer, Eastern La Noscea
	446: {1037, 8, 6.8, 7.6},    // Galvanth the Dominator, The Tam-Tara Deepcroft
	447: {1042, 37, 11.2, 6.3},  // Isgebind, Stone Vigil
	448: {363, 152, 11.2, 11.2}, // Diabolos, The Lost City of Amdapor
	449: {1041, 45, 10.6, 6.5},  // Aiatar, Brayflox's Longstop
	450: {159, 32, 12.7, 2.5},   // tonberry king, The Wanderer's Palace
	451: {349, 142, 9.2, 11.3},  // Ouranos, Copperbell Mines (Hard)
	452: {1267, 43, 16.0, 11.2}, // adjudicator, The Sunken Temple of Qarn
	453: {350, 138, 11.2, 11.3}, // Halicarnassus, Haukke Manor (Hard)
	454: {360, 145, 6.1, 11.6},  // Mumuepo the Beholden, Halatali (Hard)
	455: {1038, 41, 9.2, 11.3},  // Gyges the Great, Copperbell Mines
	456: {171, 86, 12.8, 7.8},   // Batraal, Dzemael Darkhold
	457: {362, 146, 10.6, 6.5},  // gobmachine G-VI, Brayflox's Longstop (Hard)
	458: {1039, 9, 15.6, 8.3},   // Graffias, The Thousand Maws of Toto-Rak
	459: {167, 85, 11.4, 11.2},  // Anantaboga, Amdapor Keep
	460: {170, 97, 7.7, 7.2},    // chimera, Cutter's Cry
	461: {160, 134, 11.3, 11.3}, // siren, Pharos Sirius
	462: {1036, 31, 4.9, 17.7},  // Denn the Orcatoothed, Sastasha
	463: {172, 38, 3.1, 8.7},    // Miser's Mistress, Aurum Vale
	464: {1040, 54, 11.2, 11.3}, // Lady Amandine, Haukke Manor
	465: {1245, 46, 6.1, 11.7},  // Tangata, Halatali
}
