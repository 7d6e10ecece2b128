package fakenews

// Verdict 는 판정 라벨 타입이다.
type Verdict string

const (
	// VerdictReal 는 실제 뉴스 판정이다.
	VerdictReal Verdict = "REAL"
	// VerdictFake 는 가짜 뉴스 판정이다.
	VerdictFake Verdict = "FAKE"
	// VerdictUnknown 는 응답에서 판정을 찾지 못한 경우다.
	VerdictUnknown Verdict = "UNKNOWN"
)

// DetectionExample 는 multishot 프롬프트에 들어가는 라벨링된 예시다. 저장하지 않는다.
type DetectionExample struct {
	Text       string  `json:"text"`
	Verdict    Verdict `json:"verdict" validate:"required,oneof=REAL FAKE"`
	Confidence int     `json:"confidence" validate:"min=0,max=100"`
	Reasoning  string  `json:"reasoning"`
}

// DetectionRequest 는 판별 요청이다.
// 검증은 바인딩이 아니라 서비스에서 Text 확인 후 Validate 로 수행한다.
type DetectionRequest struct {
	Text     string             `json:"text"`
	Examples []DetectionExample `json:"examples" validate:"omitempty,dive"`
}

// DetectionResult 는 판별 결과다.
// Explanation 은 Reasoning 과 같은 값이며 기존 클라이언트 호환용이다.
type DetectionResult struct {
	Verdict       Verdict `json:"verdict"`
	Confidence    int     `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
	Explanation   string  `json:"explanation"`
	RawResponse   string  `json:"rawResponse"`
	MultishotUsed bool    `json:"multishotUsed"`
}

// ChatRequest 는 자유 대화 요청이다.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse 는 자유 대화 응답이다. 파싱하지 않은 원문을 담는다.
type ChatResponse struct {
	Response string `json:"response"`
}
