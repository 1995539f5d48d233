// file: internals/features/academics/students/controller/student_import_controller.go
package controller

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/students/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentImportController struct {
	DB     *gorm.DB
	Import *service.ImportService
}

func NewStudentImportController(db *gorm.DB) *StudentImportController {
	return &StudentImportController{DB: db, Import: service.NewImportService(db)}
}

/*
=========================================
 POST /admin/students/import
 Terima dua bentuk:
   - multipart "file" .xlsx (sheet pertama, baris header di-skip)
   - body text/csv mentah
 Baris rusak dilaporkan per-row, batch jalan terus.
=========================================
*/
func (ctl *StudentImportController) ImportStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := ctl.readRows(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "File import kosong")
	}

	report, err := ctl.Import.ImportStudents(c.Context(), schoolID, rows)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, helper.ErrNotFound.Error())
		case errors.Is(err, helper.ErrBoardUnresolved):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, helper.ErrBoardUnresolved.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal total: "+err.Error())
	}

	return helper.JsonOK(c, "Import selesai", report)
}

func (ctl *StudentImportController) readRows(c *fiber.Ctx) ([][]string, error) {
	// 1) multipart xlsx
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.New("gagal buka file upload")
		}
		defer f.Close()

		wb, err := excelize.OpenReader(f)
		if err != nil {
			return nil, errors.New("file bukan xlsx yang valid")
		}
		defer wb.Close()

		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook tanpa sheet")
		}
		all, err := wb.GetRows(sheets[0])
		if err != nil {
			return nil, errors.New("gagal baca sheet pertama")
		}
		return stripHeader(all), nil
	}

	// 2) CSV mentah di body
	body := string(c.Body())
	if strings.TrimSpace(body) == "" {
		return [][]string{}, nil
	}
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1 // validasi kolom per-baris di engine, bukan di parser
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.New("CSV tidak valid: " + err.Error())
	}
	return stripHeader(records), nil
}

// stripHeader membuang baris header kalau ada, aturan sama untuk xlsx dan CSV:
// baris pertama dianggap header kalau kolom email-nya tidak mengandung "@"
// ("name,email,phone,class" vs data betulan). File tanpa header tidak
// kehilangan siswa pertamanya.
func stripHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return [][]string{}
	}
	first := rows[0]
	if len(first) >= 2 && !strings.Contains(first[1], "@") {
		return rows[1:]
	}
	return rows
}
