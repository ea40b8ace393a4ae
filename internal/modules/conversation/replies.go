// README: Canned Vietnamese replies and formatting helpers.
package conversation

import (
	"fmt"
	"strings"

	"bookbot/internal/modules/catalog"
	"bookbot/internal/modules/order"
)

const menuBody = "📚 Cảm ơn quý khách đã sử dụng Bookstore Chatbot!\n" +
	"Vui lòng chọn tính năng:\n" +
	"- Bấm '1' để Đặt sách\n" +
	"- Bấm '2' để Xem các loại sách khả dụng\n" +
	"- Bấm '3' để Tra cứu đơn hàng"

const replyMenu = menuBody

const replyBackToMenu = "↩️ Đã quay lại menu chính.\n\n" + menuBody

const replyOrderIntro = "🛒 Bạn đã chọn đặt sách.\n" +
	"Vui lòng nhập thông tin đặt hàng, ví dụ:\n" +
	"'Tôi muốn mua 2 cuốn Truyện Kiều giao cho Nam tại Hà Nội, SĐT 0123456789'.\n\n" +
	"(Hoặc bấm '0' để quay lại menu chính.)"

const replyTrackIntro = "🔎 Vui lòng nhập tên người đặt hàng để tra cứu đơn hàng.\n" +
	"(Hoặc bấm '0' để quay lại menu chính.)"

const replyNoBooks = "😔 Hiện chưa có sách nào trong kho.\n" +
	"👉 Nhấn '0' để quay lại menu chính."

const replyBookNotInStock = "❌ Xin lỗi, sách bạn chọn không có trong kho.\n" +
	"Vui lòng chọn sách khác.\n\n👉 (Nhấn '0' để quay lại menu chính)"

const replyOutOfStock = "❌ Xin lỗi, sách bạn chọn không đủ số lượng trong kho.\n" +
	"Vui lòng chọn số lượng khác.\n\n👉 (Nhấn '0' để quay lại menu chính)"

const replyGreeting = "Xin chào bạn 👋! Tôi có thể giúp gì cho bạn?"

const replyChitchat = "🙂 Tôi luôn sẵn sàng hỗ trợ bạn."

const replyBusy = "Xin lỗi, hiện tại hệ thống đang bận. Vui lòng thử lại sau 🕐."

// friendlyFields names each slot the way a clarification question
// refers to it.
var friendlyFields = map[Field]string{
	FieldCustomerName: "tên của bạn",
	FieldBookTitle:    "tên sách muốn mua",
	FieldQuantity:     "số lượng",
	FieldAddress:      "địa chỉ giao hàng",
	FieldPhone:        "số điện thoại liên lạc",
}

// fallbackQuestions are used when no language model is available to
// phrase the clarification.
var fallbackQuestions = map[Field]string{
	FieldCustomerName: "Bạn vui lòng cho tôi biết tên của bạn để tiếp tục đặt hàng.",
	FieldBookTitle:    "Bạn muốn đặt sách nào?",
	FieldQuantity:     "Bạn muốn mua bao nhiêu cuốn?",
	FieldAddress:      "Bạn cho tôi xin địa chỉ giao hàng nhé.",
	FieldPhone:        "Vui lòng cung cấp số điện thoại để tôi ghi nhận đơn hàng.",
}

func clarificationPrompt(missing []Field) string {
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = friendlyFields[f]
	}
	return fmt.Sprintf(
		"Người dùng còn thiếu %s. Hãy hỏi người dùng cung cấp những thông tin này, với giọng thân thiện, tự nhiên.",
		strings.Join(names, ", "),
	)
}

func formatClarification(question string) string {
	return fmt.Sprintf("🧩 %s\n\n👉 (Nhấn '0' để quay lại menu chính)", question)
}

func formatBookList(books []catalog.Book) string {
	lines := make([]string, len(books))
	for i, b := range books {
		lines[i] = fmt.Sprintf("- %s (Tác giả: %s, Giá: %s, Còn: %d quyển)",
			b.Title, b.Author, b.Price, b.Stock)
	}
	return fmt.Sprintf("📚 Danh sách sách khả dụng:\n\n%s\n\n"+
		"🏠 Quay lại menu chính:\n- Bấm '0' để quay lại menu chính",
		strings.Join(lines, "\n"))
}

func formatConfirmation(o *order.Order, bookTitle string) string {
	return fmt.Sprintf("✅ Đơn hàng của bạn đã được xác nhận!\n\n"+
		"🧾 Mã đơn hàng: %d\n"+
		"📗 Sách: %s\n"+
		"📦 Số lượng: %d\n"+
		"🏠 Giao đến: %s\n"+
		"📞 Liên hệ: %s\n\n"+
		"🎉 Cảm ơn bạn đã đặt hàng tại Bookstore!\n\n"+
		"🏠 Quay lại menu chính:\n"+
		"- Bấm '1' để Đặt sách\n"+
		"- Bấm '2' để Xem sách khả dụng\n"+
		"- Bấm '3' để Tra cứu đơn hàng",
		o.ID, bookTitle, o.Quantity, o.Address, o.Phone)
}

func formatTrackingResult(customerName string, orders []order.CustomerOrder) string {
	blocks := make([]string, len(orders))
	for i, o := range orders {
		blocks[i] = fmt.Sprintf("🧾 Mã đơn: %d\n📗 Sách: %s\n📦 Số lượng: %d\n🚚 Trạng thái: %s",
			o.ID, o.BookTitle, o.Quantity, o.Status)
	}
	return fmt.Sprintf("📋 Kết quả tra cứu đơn hàng cho '%s':\n\n%s\n\n"+
		"🏠 Quay lại menu chính:\n"+
		"- Bấm '1' để Đặt sách\n"+
		"- Bấm '2' để Xem sách khả dụng\n"+
		"- Bấm '3' để Tra cứu đơn hàng",
		customerName, strings.Join(blocks, "\n\n"))
}

func formatTrackingEmpty(customerName string) string {
	return fmt.Sprintf("❌ Không tìm thấy đơn hàng nào của '%s'.\n"+
		"👉 Thử lại hoặc nhấn '0' để quay lại menu chính.", customerName)
}
