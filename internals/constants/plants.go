package constants

// =======================
// PLANT SCOPE
// =======================

// DefaultPlantCode: fallback terakhir ketika scope service gagal dan cache kosong.
const DefaultPlantCode = 2021

// plantLocationMap: mapping statis plant code → lokasi fisik.
// Labour master di-filter pakai lokasi, bukan plant code (lihat cascade resolver).
var plantLocationMap = map[int]string{
	2021: "Baramati",
	2022: "Baramati",
	2023: "Pune",
}

// LocationForPlantCode mengembalikan lokasi untuk plant code, atau "" jika tidak terdaftar.
func LocationForPlantCode(plantCode int) string {
	return plantLocationMap[plantCode]
}
