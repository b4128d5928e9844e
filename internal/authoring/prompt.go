package authoring

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a math curriculum author. You write question templates
for a generation engine that samples integer parameters and computes answers itself.

Rules for every template:
- type is a snake_case identifier starting with the topic word, e.g. "fraction_add_like".
- text_pattern contains {name} placeholders for every parameter and nothing else dynamic.
- Every placeholder must have an entry in parameters with integer min and max (and
  optional step). Choose ranges that keep answers clean for the level.
- solution describes how the engine computes the answer:
  - {"kind":"const","a":N} for a fixed answer N.
  - {"kind":"sum","params":[...],"a":A,"b":B} computes A*(p1+p2+...)+B.
  - {"kind":"product","params":[...],"a":A,"b":B} computes A*(p1*p2*...)+B.
    Repeat a parameter to square it.
  - {"kind":"choice","choice":I} marks fixed_choices[I] as correct; the template
    must then carry fixed_choices with at least 2 distinct labels.
- cognitive_domain is one of: recall, concept, procedural, analytical,
  problem_solving, higher_order. Lower levels lean recall/concept, higher levels
  analytical/problem_solving.
- hint is one or two short sentences naming the method, never the answer.

Difficulty levels run 1 (easiest) to 4. Keep level 1 single-step with small numbers.`

func buildUserPrompt(req DraftRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Draft a topic catalog named %q covering %s.\n", req.Name, req.Topic)
	b.WriteString("Populate these difficulty levels:\n")
	for _, l := range req.Levels {
		fmt.Fprintf(&b, "- level %d: %d templates\n", l, req.PerLevel)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "\nAdditional guidance: %s\n", req.Notes)
	}
	b.WriteString("\nReturn only the catalog JSON.")

	return b.String()
}
