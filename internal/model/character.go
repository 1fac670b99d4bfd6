package model

import "encoding/json"

// LocationRef представляет ссылку на локацию персонажа (origin или location).
// Значения создаются только валидацией и после этого не изменяются.
type LocationRef struct {
	name string
	url  string
}

// Name возвращает название локации
func (l LocationRef) Name() string {
	return l.name
}

// URL возвращает ссылку на ресурс локации. Пустая строка означает,
// что API не связал локацию с персонажем — это допустимое значение,
// а не ошибка валидации.
func (l LocationRef) URL() string {
	return l.url
}

// Character представляет персонажа Rick and Morty API. Поля неэкспортируемые:
// значение конструируется только через Validate/ParseCharacter и после
// успешной валидации не может быть изменено.
type Character struct {
	id       int
	name     string
	status   string
	species  string
	kind     string
	gender   string
	origin   LocationRef
	location LocationRef
	image    string
	episode  []string
	url      string
	created  string
}

// ID возвращает идентификатор персонажа
func (c Character) ID() int {
	return c.id
}

// Name возвращает имя персонажа
func (c Character) Name() string {
	return c.name
}

// Status возвращает статус персонажа (например "Alive", "Dead", "unknown")
func (c Character) Status() string {
	return c.status
}

// Species возвращает вид персонажа
func (c Character) Species() string {
	return c.species
}

// Type возвращает подтип персонажа; может быть пустой строкой
func (c Character) Type() string {
	return c.kind
}

// Gender возвращает пол персонажа
func (c Character) Gender() string {
	return c.gender
}

// Origin возвращает локацию происхождения персонажа
func (c Character) Origin() LocationRef {
	return c.origin
}

// Location возвращает текущую локацию персонажа
func (c Character) Location() LocationRef {
	return c.location
}

// Image возвращает URL аватара персонажа
func (c Character) Image() string {
	return c.image
}

// Episodes возвращает копию списка URL эпизодов с участием персонажа
func (c Character) Episodes() []string {
	episodes := make([]string, len(c.episode))
	copy(episodes, c.episode)
	return episodes
}

// URL возвращает ссылку персонажа на самого себя в API
func (c Character) URL() string {
	return c.url
}

// Created возвращает время создания записи в API (строка ISO-8601)
func (c Character) Created() string {
	return c.created
}

type locationRefJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type characterJSON struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	Species  string          `json:"species"`
	Type     string          `json:"type"`
	Gender   string          `json:"gender"`
	Origin   locationRefJSON `json:"origin"`
	Location locationRefJSON `json:"location"`
	Image    string          `json:"image"`
	Episode  []string        `json:"episode"`
	URL      string          `json:"url"`
	Created  string          `json:"created"`
}

// MarshalJSON сериализует LocationRef обратно в формат API
func (l LocationRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationRefJSON{Name: l.name, URL: l.url})
}

// MarshalJSON сериализует Character обратно в формат API.
// Пустой список эпизодов кодируется как [], а не null.
func (c Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(characterJSON{
		ID:       c.id,
		Name:     c.name,
		Status:   c.status,
		Species:  c.species,
		Type:     c.kind,
		Gender:   c.gender,
		Origin:   locationRefJSON{Name: c.origin.name, URL: c.origin.url},
		Location: locationRefJSON{Name: c.location.name, URL: c.location.url},
		Image:    c.image,
		Episode:  c.Episodes(),
		URL:      c.url,
		Created:  c.created,
	})
}
