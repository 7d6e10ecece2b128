package fakenews

// canonicalExamples 는 multishot 프롬프트 앞에 항상 붙는 고정 예시다.
var canonicalExamples = []DetectionExample{
	{
		Text:       "Scientists discover miracle cure that makes people immortal using common household items",
		Verdict:    VerdictFake,
		Confidence: 98,
		Reasoning:  "Extraordinary medical claims without peer review, uses sensational language, promises impossible results",
	},
	{
		Text:       "The Department of Transportation announced $2.1 billion in federal grants for bridge repairs across 40 states, according to an official press release",
		Verdict:    VerdictReal,
		Confidence: 90,
		Reasoning:  "Attributed to an official government source, gives specific and verifiable figures, neutral tone",
	},
	{
		Text:       "Federal Reserve announces 0.25% interest rate increase following inflation concerns",
		Verdict:    VerdictReal,
		Confidence: 92,
		Reasoning:  "Standard monetary policy announcement, specific numerical data, aligns with economic patterns",
	},
	{
		Text:       "SHOCKING: Secret government documents prove 5G towers are controlling people's thoughts, share before it gets deleted!",
		Verdict:    VerdictFake,
		Confidence: 96,
		Reasoning:  "Conspiracy framing with no named source, urgency to share, scientifically implausible claim",
	},
}
