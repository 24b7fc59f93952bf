// Package geodata ships a small built-in table of well known Seoul-area
// places. It backs geocoding lookups when the external provider is not
// configured or unreachable, so the map stays usable in development and in
// degraded production.
package geodata

import "strings"

// Place is one built-in geocoding entry.
type Place struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var places = []Place{
	{Name: "홍대입구역", Address: "서울 마포구 양화로 지하 160", Latitude: 37.557192, Longitude: 126.924618},
	{Name: "홍대 걷고싶은거리", Address: "서울 마포구 어울마당로", Latitude: 37.555134, Longitude: 126.923474},
	{Name: "연남동", Address: "서울 마포구 연남동", Latitude: 37.562775, Longitude: 126.925384},
	{Name: "경의선숲길", Address: "서울 마포구 연남동 568-1", Latitude: 37.560418, Longitude: 126.925447},
	{Name: "망원한강공원", Address: "서울 마포구 마포나루길 467", Latitude: 37.554670, Longitude: 126.896468},
	{Name: "망원시장", Address: "서울 마포구 포은로 83", Latitude: 37.555823, Longitude: 126.905748},
	{Name: "합정역", Address: "서울 마포구 양화로 지하 55", Latitude: 37.549463, Longitude: 126.913767},
	{Name: "상수역", Address: "서울 마포구 독막로 지하 165", Latitude: 37.547716, Longitude: 126.922843},
	{Name: "신촌역", Address: "서울 서대문구 신촌로 지하 90", Latitude: 37.555134, Longitude: 126.936893},
	{Name: "이대역", Address: "서울 마포구 신촌로 지하 180", Latitude: 37.556733, Longitude: 126.946013},
	{Name: "서강대학교", Address: "서울 마포구 백범로 35", Latitude: 37.551147, Longitude: 126.941167},
	{Name: "여의도한강공원", Address: "서울 영등포구 여의동로 330", Latitude: 37.528499, Longitude: 126.934037},
	{Name: "반포한강공원", Address: "서울 서초구 신반포로11길 40", Latitude: 37.510027, Longitude: 126.995147},
	{Name: "뚝섬한강공원", Address: "서울 광진구 강변북로 139", Latitude: 37.529627, Longitude: 127.069915},
	{Name: "서울숲", Address: "서울 성동구 뚝섬로 273", Latitude: 37.544579, Longitude: 127.037615},
	{Name: "올림픽공원", Address: "서울 송파구 올림픽로 424", Latitude: 37.520569, Longitude: 127.121399},
	{Name: "남산서울타워", Address: "서울 용산구 남산공원길 105", Latitude: 37.551169, Longitude: 126.988227},
	{Name: "명동", Address: "서울 중구 명동길", Latitude: 37.563757, Longitude: 126.982679},
	{Name: "광화문광장", Address: "서울 종로구 세종대로 172", Latitude: 37.572979, Longitude: 126.976849},
	{Name: "경복궁", Address: "서울 종로구 사직로 161", Latitude: 37.579617, Longitude: 126.977041},
	{Name: "인사동", Address: "서울 종로구 인사동길", Latitude: 37.573238, Longitude: 126.985702},
	{Name: "북촌한옥마을", Address: "서울 종로구 계동길 37", Latitude: 37.582604, Longitude: 126.983998},
	{Name: "동대문디자인플라자", Address: "서울 중구 을지로 281", Latitude: 37.566295, Longitude: 127.009369},
	{Name: "이태원역", Address: "서울 용산구 이태원로 지하 177", Latitude: 37.534488, Longitude: 126.994430},
	{Name: "강남역", Address: "서울 강남구 강남대로 지하 396", Latitude: 37.497952, Longitude: 127.027619},
	{Name: "코엑스", Address: "서울 강남구 영동대로 513", Latitude: 37.511768, Longitude: 127.059156},
	{Name: "잠실종합운동장", Address: "서울 송파구 올림픽로 25", Latitude: 37.515640, Longitude: 127.073040},
	{Name: "석촌호수", Address: "서울 송파구 잠실동", Latitude: 37.509490, Longitude: 127.103950},
	{Name: "건대입구역", Address: "서울 광진구 능동로 지하 110", Latitude: 37.540402, Longitude: 127.069281},
	{Name: "대학로", Address: "서울 종로구 대학로", Latitude: 37.582263, Longitude: 127.001818},
}

// Search returns entries whose name or address contains q, case-folded.
// An empty query matches nothing.
func Search(q string) []Place {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []Place
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Address), q) {
			out = append(out, p)
		}
	}
	return out
}
