package service

import "errors"

// Error bisnis inti; controller yang memetakan ke status HTTP.
var (
	ErrDiscountExceedsTotal = errors.New("total bantuan melebihi total tagihan")
	ErrPaymentNotFound      = errors.New("payment tidak ditemukan")
	ErrTuitionNotFound      = errors.New("tuition tidak ditemukan")

	// Hasil kosong pada list tuition dianggap bukti payment ID tidak valid:
	// payment yang sah selalu punya minimal satu tuition.
	ErrInvalidPaymentID = errors.New("payment ID tidak valid")
)
