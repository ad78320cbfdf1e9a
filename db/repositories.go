package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrPessoaExists reports that an insert hit the apelido uniqueness
// constraint. It is a domain conflict, not a store failure.
var ErrPessoaExists = errors.New("pessoa already exists")

func CountPessoa(conn PgxIface) (int64, error) {
	sql := `select count(*) from pessoa`

	var count int64

	err := conn.QueryRow(context.Background(), sql).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func GetPessoaById(conn PgxIface, id uuid.UUID) (*Pessoa, error) {
	sql := `select id, apelido, nome, nascimento, stack from pessoa where id = $1`

	var pessoa Pessoa
	var stack string

	err := conn.QueryRow(context.Background(), sql, id).Scan(
		&pessoa.Id,
		&pessoa.Apelido,
		&pessoa.Nome,
		&pessoa.Nascimento,
		&stack)

	if err != nil {
		return nil, err
	}

	pessoa.Stack = DecodeStack(stack)

	return &pessoa, nil
}

func FindPessoas(conn PgxIface, search string) ([]Pessoa, error) {
	sql := `select id, apelido, nome, nascimento, stack
		from pessoa
		where lower(nome || ' ' || apelido || ' ' || stack) like lower($1)
		limit 50`

	result, err := conn.Query(context.Background(), sql, "%"+search+"%")

	if err != nil {
		return nil, err
	}
	defer result.Close()

	pessoas := []Pessoa{}

	for result.Next() {
		var pessoa Pessoa
		var stack string

		err := result.Scan(
			&pessoa.Id,
			&pessoa.Apelido,
			&pessoa.Nome,
			&pessoa.Nascimento,
			&stack)

		if err != nil {
			return nil, err
		}

		pessoa.Stack = DecodeStack(stack)
		pessoas = append(pessoas, pessoa)
	}

	if err := result.Err(); err != nil {
		return nil, err
	}

	return pessoas, nil
}

// SavePessoa inserts a pessoa, relying on the unique index over apelido to
// settle concurrent duplicates atomically: the conflicting insert writes
// nothing and returns no row, which surfaces as ErrPessoaExists.
func SavePessoa(conn PgxIface, id uuid.UUID, pessoa Pessoa) error {
	sql := `insert into pessoa (id, apelido, nome, nascimento, stack)
		values ($1, $2, $3, $4, $5)
		on conflict do nothing
		returning id`

	var inserted uuid.UUID

	err := conn.QueryRow(context.Background(), sql,
		id, pessoa.Apelido, pessoa.Nome, pessoa.Nascimento, EncodeStack(pessoa.Stack)).
		Scan(&inserted)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPessoaExists
	}

	return err
}
