package ocr

import "context"

// MockText is the canned contract template returned by the mock strategy,
// used for demos and as the universal fallback output.
const MockText = `Hợp đồng mua bán

Bên A: Công ty TNHH ABC
Địa chỉ: 123 Đường Nguyễn Huệ, Quận 1, TP.HCM

Bên B: Ông Nguyễn Văn A
Địa chỉ: 456 Đường Lê Lợi, Quận 3, TP.HCM

Điều 1: Đối tượng hợp đồng
Bên A đồng ý bán cho Bên B sản phẩm theo danh sách đính kèm.

Điều 2: Giá trị hợp đồng
Tổng giá trị: 100.000.000 VNĐ (Một trăm triệu đồng)

Điều 3: Phương thức thanh toán
Thanh toán 50% khi ký hợp đồng, 50% còn lại khi giao hàng.`

// MockStrategy returns MockText for any input. The image content is ignored
// once the dispatcher has validated the format.
type MockStrategy struct{}

// NewMockStrategy creates the mock strategy.
func NewMockStrategy() *MockStrategy { return &MockStrategy{} }

// Name implements Strategy.
func (s *MockStrategy) Name() string { return "mock" }

// ExtractText implements Strategy. It never fails.
func (s *MockStrategy) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	return MockText, nil
}
