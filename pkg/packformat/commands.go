// SPDX-License-Identifier: MPL-2.0

package packformat

import "strings"

// anyFormat covers every format this compiler understands. Commands that
// have existed since before pack format 4 use it.
var anyFormat = Range{Min: 0, Max: Latest}

func since(min Format) Range { return Range{Min: min, Max: Latest} }
func until(max Format) Range { return Range{Min: 0, Max: max} }

// evergreenCommands have existed in every format the compiler understands.
var evergreenCommands = []string{
	"advancement", "ban", "ban-ip", "banlist", "clear", "clone", "debug",
	"defaultgamemode", "deop", "difficulty", "effect", "enchant", "execute",
	"experience", "fill", "gamemode", "gamerule", "give", "help", "kick",
	"kill", "list", "locate", "me", "msg", "op", "pardon", "pardon-ip",
	"particle", "playsound", "publish", "recipe", "reload", "save-all",
	"save-off", "save-on", "say", "scoreboard", "seed", "setblock",
	"setidletimeout", "setworldspawn", "spawnpoint", "spreadplayers", "stop",
	"stopsound", "summon", "teleport", "tell", "tellraw", "time", "title",
	"tp", "trigger", "w", "weather", "whitelist", "worldborder", "xp",
}

// commandFormats maps the first word of a raw command to the format range
// in which the target runtime knows the command. Absent commands are treated
// as always valid: the compiler checks structure, not runtime semantics.
var commandFormats = buildCommandFormats()

func buildCommandFormats() map[string]Range {
	m := make(map[string]Range, len(evergreenCommands)+32)
	for _, cmd := range evergreenCommands {
		m[cmd] = anyFormat
	}

	m["attribute"] = since(6)
	m["bossbar"] = since(4)
	m["damage"] = since(12)
	m["data"] = since(4)
	m["datapack"] = since(4)
	m["fillbiome"] = since(12)
	m["forceload"] = since(4)
	m["function"] = since(4)
	m["replaceitem"] = until(6)
	m["item"] = since(7)
	m["jfr"] = since(8)
	m["loot"] = since(4)
	m["perf"] = since(7)
	m["place"] = since(10)
	m["placefeature"] = Range{Min: 9, Max: 9}
	m["random"] = since(18)
	m["return"] = since(15)
	m["ride"] = since(12)
	m["schedule"] = since(4)
	m["spectate"] = since(5)
	m["tag"] = since(4)
	m["team"] = since(4)
	m["teammsg"] = since(4)
	m["tick"] = since(22)
	m["tm"] = since(4)
	m["transfer"] = since(41)
	return m
}

// CommandValid reports whether the raw command's leading word exists across
// the whole supported range. Unknown leading words are accepted; only
// commands the table knows about can be rejected.
func CommandValid(command string, supported Range) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return true
	}
	known, ok := commandFormats[fields[0]]
	if !ok {
		return true
	}
	return known.Min <= supported.Min && known.Max >= supported.Max
}
