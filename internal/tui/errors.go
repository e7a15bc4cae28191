// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
)

var ErrUserQuit = errors.New("user quit")

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrWrongPassword, "Неверный email или пароль"},
	{store.ErrEmailAlreadyExists, "Пользователь с таким email уже существует"},
	{service.ErrClaimsNotReady, "Сервер не успел подготовить аккаунт, попробуйте ещё раз"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, войдите заново"},
	{service.ErrNotListOwner, "Это может сделать только владелец списка"},
	{service.ErrListAccessDenied, "Нет доступа к списку"},
	{service.ErrOwnerCannotLeave, "Владелец не может покинуть свой список"},
	{service.ErrSelfInvite, "Нельзя пригласить самого себя"},
	{store.ErrAlreadyInvited, "Пользователь уже приглашён"},
	{store.ErrNoUserWasFound, "Пользователь не найден"},
	{store.ErrListNotFound, "Список не найден"},
	{store.ErrInviteNotFound, "Приглашение не найдено"},
	{service.ErrEmptyListName, "Название списка не может быть пустым"},
	{service.ErrEmptyDescription, "Описание не может быть пустым"},
	{service.ErrNotConfirmed, "Запись ещё не подтверждена сервером"},
	{service.ErrInvalidDataProvided, "Некорректные данные"},
}

// humanizeError turns err into a message for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
