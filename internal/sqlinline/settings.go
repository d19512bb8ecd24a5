package sqlinline

const QSelectAppSettings = `--sql 3f8c2b1a-6e47-4f0d-9c51-2a7b84d0c9e1
select payload
from app_settings
where scope = $1::text
limit 1;
`

const QUpsertAppSettings = `--sql b2d94a7c-15e8-4c36-8a02-6f3d1e9b54a8
insert into app_settings (id, scope, payload, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::jsonb, now(), now())
on conflict (scope) do update set
    payload = excluded.payload,
    updated_at = now();
`
