package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportInvalidRange = errors.New("导出日期范围无效")
	ErrExportNoBookings   = errors.New("该时间段内无预订记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// maxExportDays 单次导出最大天数
const maxExportDays = 366

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportBookings 导出日期区间内的预订为 Excel，court_id 可选
	ExportBookings(ctx context.Context, req *dto.ExportBookingRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportBookings 导出预订为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单个 Sheet "预订"
//   - 第 1 行为标题，第 2 行为表头
//   - 每条预订一行：日期 / 场地 / 场次 / 客户 / 状态 / 支付方式 / 金额 / 积分
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportBookings(ctx context.Context, req *dto.ExportBookingRequest) (*bytes.Buffer, string, error) {
	// 1. 校验日期区间
	from, err := parseDate(req.From)
	if err != nil {
		return nil, "", err
	}
	to, err := parseDate(req.To)
	if err != nil {
		return nil, "", err
	}
	if dateBefore(to, from) {
		return nil, "", ErrExportInvalidRange
	}
	if days := int(timeOf(to).Sub(timeOf(from)).Hours() / 24); days > maxExportDays {
		return nil, "", ErrExportInvalidRange
	}

	// 2. 查询预订（含用户、场地、场次）
	bookings, err := s.repo.Booking.ListForExport(ctx, repository.BookingFilter{
		CourtID: req.CourtID,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		s.logger.Error("查询导出预订失败", zap.Error(err))
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", ErrExportNoBookings
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "预订"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headers := []string{"日期", "场地", "场次", "客户", "邮箱", "状态", "支付方式", "金额", "积分"}
	widths := []float64{12, 16, 22, 16, 26, 12, 10, 12, 8}
	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("预订明细 %s ~ %s", req.From, req.To))
	f.MergeCell(sheetName, "A1", cell(colName(len(headers)-1), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheetName, "A2", cell(colName(len(headers)-1), 2), headerStyle)

	// 数据行
	row := 3
	for _, b := range bookings {
		courtTitle, slotLabel, customer, email := "-", "-", "-", "-"
		if b.Court != nil {
			courtTitle = b.Court.Title
		}
		if b.Slot != nil {
			slotLabel = b.Slot.Label()
		}
		if b.User != nil {
			customer = b.User.Name
			email = b.User.Email
		}

		values := []interface{}{
			formatDate(b.BookingDate),
			courtTitle,
			slotLabel,
			customer,
			email,
			b.Status,
			b.PaymentType,
			b.Amount.InexactFloat64(),
			b.Points,
		}
		for i, v := range values {
			f.SetCellValue(sheetName, cell(colName(i), row), v)
		}
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("bookings_%s_%s.xlsx", req.From, req.To)
	return buf, filename, nil
}

// ── 内部辅助方法 ──

// colName 0 起始列号转列名（0 → A）
func colName(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
